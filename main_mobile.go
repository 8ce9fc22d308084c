//go:build android || ios

package main

// The mobile build runs through the ebitenmobile binding in ./mobile.
func main() {}
