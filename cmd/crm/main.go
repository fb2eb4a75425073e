// Command crm runs the LocalCRM API server and its maintenance tasks, and
// drives the deal board over the REST API.
//
//	crm serve                     run the HTTP server
//	crm migrate up|down|status    manage the schema
//	crm seed                      replace all data with the demo dataset
//	crm board show                print the pipeline board
//	crm board move <deal> <stage> move a deal to another stage
//
// Exit codes: 0 = success, 1 = error.
package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := newRootCmd().ExecuteContext(ctx); err != nil {
		fmt.Fprintln(os.Stderr, "error:", err)
		stop()
		os.Exit(1)
	}
}
