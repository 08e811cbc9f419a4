package main

import "workbase.com/workbase/cmd"

func main() {
	cmd.Execute()
}
