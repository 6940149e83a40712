/*
Copyright © 2024 NAME HERE <EMAIL ADDRESS>
*/
package main

import "github.com/coffeetrail/stockrelay/cmd/srapid/cmd"

func main() {
	cmd.Execute()
}
