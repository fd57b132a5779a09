package main

import (
	"context"
	"log"
	"os"

	"github.com/Apurer/stock-ledger/internal/app/stockledger"
)

func main() {
	if err := stockledger.Run(context.Background(), os.Args[1:]); err != nil {
		log.Fatalf("stockledger: %v", err)
	}
}
