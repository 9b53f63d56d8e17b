package main

import "github.com/sunar87/foodgram/cmd"

func main() {
	cmd.Execute()
}
