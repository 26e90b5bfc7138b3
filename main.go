package main

import "github.com/martinc1991/zod-prisma-types/cmd"

func main() {
	cmd.Execute()
}
