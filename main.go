/*
Copyright © 2026 Erawpalassalg
*/
package main

import "github.com/Erawpalassalg/GDTools/cmd"

func main() {
	cmd.Execute()
}
