// Command qrgen renders a styled QR code PNG from the command line.
//
//	qrgen -type wifi -ssid "Home" -password secret -out ./codes
//	qrgen -type url -url https://example.com -style brand.yaml -preview
//	qrgen -type geo -geo-lat 52.52 -geo-lng 13.405 -random-colors
package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"syscall"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := run(ctx, os.Args[1:], os.Stdout, os.Stderr); err != nil {
		if errors.Is(err, flag.ErrHelp) {
			os.Exit(0)
		}
		fmt.Fprintln(os.Stderr, "qrgen:", err)
		os.Exit(1)
	}
}
