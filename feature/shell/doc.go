// Package shell implements the interactive inventory menu.
//
// The menu offers viewing a product by id, adding or updating a product,
// backing up the inventory and quitting. Input ends the session the same way
// quitting does.
package shell
