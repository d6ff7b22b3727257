// Package main provides the authcheck CLI application.
// authcheck checks conference submissions against an author quota.
package main

import "github.com/gnames/authcheck/cmd"

func main() {
	cmd.Execute()
}
