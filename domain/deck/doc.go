// Package deck implements a pool of cards drawn without replacement.
//
// The game uses it for the character pool: each seat draws a character card
// and the card leaves the pool, so an exhausted pool surfaces as ErrEmpty
// instead of a duplicate character.
package deck
