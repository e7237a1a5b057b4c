package main

import "github.com/nominahr/payroll-management/cmd"

func main() {
	cmd.Execute()
}
