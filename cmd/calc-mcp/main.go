package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"log/slog"
	"os"

	"github.com/averycrespi/calc-mcp/internal/calculator"
	"github.com/averycrespi/calc-mcp/internal/server"
	"github.com/averycrespi/calc-mcp/pkg/types"
)

func main() {
	var (
		precision = flag.Int("precision", 2, "Number of decimal digits to round results to")
		logLevel  = flag.String("log-level", "info", "Log level (debug, info, warn, error)")
		demo      = flag.Bool("demo", false, "Print example calculations and exit")
	)
	flag.Parse()

	level, err := parseLogLevel(*logLevel)
	if err != nil {
		log.Fatalf("Invalid log level: %v", err)
	}

	// Log to stderr so MCP stdio framing on stdout stays clean
	slog.SetDefault(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level})))

	if *precision < 0 {
		log.Fatalf("Invalid precision: %d", *precision)
	}

	config := types.Config{
		Precision: *precision,
		LogLevel:  *logLevel,
	}

	engine := calculator.New(config, nil, slog.Default())

	if *demo {
		runDemo(engine)
		return
	}

	calcServer := server.NewCalcServer(engine, config)

	// Serve blocks until the server shuts down
	if err := calcServer.Serve(context.Background()); err != nil {
		log.Fatalf("Server error: %v", err)
	}
}

func parseLogLevel(level string) (slog.Level, error) {
	switch level {
	case "debug":
		return slog.LevelDebug, nil
	case "info":
		return slog.LevelInfo, nil
	case "warn":
		return slog.LevelWarn, nil
	case "error":
		return slog.LevelError, nil
	default:
		return 0, fmt.Errorf("unknown log level: %q", level)
	}
}

// runDemo prints a few example calculations and the resulting history
func runDemo(engine types.Engine) {
	examples := []struct {
		operation types.Operation
		a         float64
		b         float64
	}{
		{types.OperationAdd, 10, 5},
		{types.OperationSubtract, 10, 5},
		{types.OperationMultiply, 10, 5},
		{types.OperationDivide, 10, 0},
	}

	for _, example := range examples {
		result, err := engine.Calculate(example.operation, example.a, example.b)
		switch {
		case err != nil:
			fmt.Printf("%v %s %v failed: %v\n", example.a, example.operation, example.b, err)
		case result == nil:
			fmt.Printf("%v %s %v produced no result\n", example.a, example.operation, example.b)
		default:
			fmt.Printf("%v %s %v = %v\n", example.a, example.operation, example.b, *result)
		}
	}

	fmt.Println("History:")
	for _, entry := range engine.History() {
		fmt.Printf("- %s\n", entry)
	}
}
