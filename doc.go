// Package cyclic provides functionality for generating marker patterns:
// fixed-length strings that enumerate an alphabet in odometer order.
// Marker patterns make it easy to tell which part of a buffer ended
// up where (e.g., which bytes of a payload overwrote a saved register).
//
// APIs are separated into subpackages, and documented accordingly.
//
// For scripting convenience, "OrExit" functions and methods are provided.
// Any errors encountered by these functions are treated as fatal. In such
// cases, an exit handler function is invoked.
package cyclic
