// Package navigation derives the state shown by the workspace navigation
// drawer and the mobile navigation bar. Everything here is plain data: the
// rendering layer receives the structs and draws them.
package navigation
