// Package theme validates theme properties, renders them into a stylesheet,
// and stores the result alongside the built-in themes.
//
// User themes live as <name>.css files in a themes directory. A user theme
// shadows a built-in theme of the same name; names are compared
// case-sensitively.
package theme
