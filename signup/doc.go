// Package signup accepts incoming player connections ahead of a
// tournament and validates each one's name. Everything past that
// output contract — the []SignedUpClient connections it hands back —
// is intentionally out of scope; this package is deliberately thin.
//
// Usage:
//
//	ln, _ := net.Listen("tcp", ":4567")
//	clients, err := signup.Run(ctx, ln, signup.DefaultWindow)
package signup
