// main.go
package main

import "payments-api/cmd"

func main() {
	cmd.Execute()
}
