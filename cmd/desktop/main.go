// The desktop entrypoint drives the engine through the in-process facade:
// a line-oriented console a barcode scanner (acting as a keyboard) can feed
// directly. It shares the data directory and migrations with the server.
package main

import (
	"bufio"
	"errors"
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/joho/godotenv"
	"github.com/shopspring/decimal"

	"github.com/tair/barcode-inventory/internal/facade"
	"github.com/tair/barcode-inventory/internal/ledger/domain"
	ledgercmd "github.com/tair/barcode-inventory/internal/ledger/usecase/command"
	"github.com/tair/barcode-inventory/internal/migrate"
	"github.com/tair/barcode-inventory/pkg/apperr"
	"github.com/tair/barcode-inventory/pkg/logger"
	"github.com/tair/barcode-inventory/pkg/storage"
)

func main() {
	_ = godotenv.Load()

	logger.Init(getEnv("SERVICE_NAME", "inventory-desktop"), true)
	logger.SetLevel(getEnv("LOG_LEVEL", "warn"))

	dataDir := os.Getenv("DATA_DIR")
	if dataDir == "" {
		var err error
		dataDir, err = storage.DefaultDir()
		if err != nil {
			logger.Logger.Fatal().Err(err).Msg("Failed to resolve data directory")
		}
	}

	store, err := storage.Open(dataDir)
	if err != nil {
		logger.Logger.Fatal().Err(err).Msg("Failed to open data store")
	}
	if err := migrate.Run(store, migrate.Steps()); err != nil {
		logger.Logger.Fatal().Err(err).Msg("Failed to run migrations")
	}

	engine := facade.New(store)

	fmt.Printf("Barcode inventory console (data: %s)\n", store.Dir())
	fmt.Println(`Type "help" for commands.`)

	scanner := bufio.NewScanner(os.Stdin)
	for {
		fmt.Print("> ")
		if !scanner.Scan() {
			return
		}
		line := strings.TrimSpace(scanner.Text())
		if line == "" {
			continue
		}
		if line == "exit" || line == "quit" {
			return
		}
		run(engine, strings.Fields(line))
	}
}

func run(engine *facade.Facade, args []string) {
	switch args[0] {
	case "help":
		fmt.Println("  add|cut|adjust <barcode> <size> <amount> [salePrice]")
		fmt.Println("  product <barcode>")
		fmt.Println("  log [n]")
		fmt.Println("  undo <transaction-id>")
		fmt.Println("  value")
		fmt.Println("  exit")
	case "add", "cut", "adjust":
		transaction(engine, args)
	case "product":
		if len(args) != 2 {
			fmt.Println("usage: product <barcode>")
			return
		}
		product, err := engine.Product(args[1])
		if err != nil {
			report(err)
			return
		}
		fmt.Printf("%s  category=%s  default_cost=%s\n", product.Name, product.CategoryID, product.DefaultCost)
	case "log":
		limit := 20
		if len(args) == 2 {
			if n, err := strconv.Atoi(args[1]); err == nil && n > 0 {
				limit = n
			}
		}
		records, err := engine.Transactions(true)
		if err != nil {
			report(err)
			return
		}
		if len(records) > limit {
			records = records[:limit]
		}
		for _, r := range records {
			fmt.Printf("%s  %-8s %+d  %s  stock=%d  id=%s\n",
				r.Timestamp.Format("2006-01-02 15:04:05"), r.Type, r.Amount, r.ItemName, r.NewStock, r.ID)
		}
	case "undo":
		if len(args) != 2 {
			fmt.Println("usage: undo <transaction-id>")
			return
		}
		if err := engine.DeleteTransaction(args[1]); err != nil {
			report(err)
			return
		}
		fmt.Println("Transaction deleted and stock reverted.")
	case "value":
		valuation, err := engine.Valuation()
		if err != nil {
			report(err)
			return
		}
		for _, item := range valuation.Items {
			fmt.Printf("  %s  %-24s units=%-5d value=%s\n", item.Barcode, item.Name, item.Units, item.Value)
		}
		fmt.Printf("TOTAL: %d units, value %s\n", valuation.TotalUnits, valuation.TotalValue)
	default:
		fmt.Printf("unknown command %q\n", args[0])
	}
}

func transaction(engine *facade.Facade, args []string) {
	if len(args) < 4 || len(args) > 5 {
		fmt.Println("usage: add|cut|adjust <barcode> <size> <amount> [salePrice]")
		return
	}

	amount, err := strconv.Atoi(args[3])
	if err != nil {
		fmt.Println("amount must be an integer")
		return
	}

	salePrice := decimal.Zero
	if len(args) == 5 {
		salePrice, err = decimal.NewFromString(args[4])
		if err != nil {
			fmt.Println("salePrice must be a number")
			return
		}
	}

	result, err := engine.ProcessTransaction(ledgercmd.ApplyTransactionCommand{
		Barcode:   args[1],
		Size:      args[2],
		Mode:      domain.Mode(args[0]),
		Amount:    amount,
		SalePrice: salePrice,
	})
	if err != nil {
		report(err)
		return
	}
	fmt.Println(result.Message)
}

// report prints a domain failure as its message key plus context, the same
// contract the HTTP surface exposes.
func report(err error) {
	var ae *apperr.Error
	if errors.As(err, &ae) {
		if len(ae.Context) > 0 {
			fmt.Printf("ERROR %s %v\n", ae.Key, ae.Context)
		} else {
			fmt.Printf("ERROR %s\n", ae.Key)
		}
		return
	}
	fmt.Printf("ERROR %v\n", err)
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}
