package main

import (
	"github.com/consensys/go-qasmtrans/pkg/cmd"
)

func main() {
	cmd.Execute()
}
