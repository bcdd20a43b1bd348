package main

import (
	"context"
	"encoding/json"
	"errors"
	"flag"
	"fmt"
	"io"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"jkopay-go/internal/config"
	"jkopay-go/internal/logger"
	"jkopay-go/internal/utils"
	"jkopay-go/jkopay"

	"github.com/fatih/color"
	"go.uber.org/zap"
)

const usage = `usage:
  jkopay entry   [-order ID] -total N -final N [options]
  jkopay refund  -order ID -amount N
  jkopay inquiry ID[,ID...] [ID ...]`

var errUsage = errors.New(usage)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := run(ctx, os.Args[1:], os.Stdout, os.Stderr); err != nil {
		color.New(color.FgRed).Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

type response interface {
	Err() error
}

func run(ctx context.Context, args []string, stdout, stderr io.Writer) error {
	if len(args) == 0 {
		return errUsage
	}

	cfg, err := config.LoadConfig()
	if err != nil {
		return err
	}
	logger.Init(cfg.AppEnv)
	defer logger.Sync()

	client := newClient(cfg)
	ctx = logger.EnsureRequestID(ctx)

	var resp response
	switch args[0] {
	case "entry":
		resp, err = runEntry(ctx, client, args[1:], stderr)
	case "refund":
		resp, err = runRefund(ctx, client, args[1:], stderr)
	case "inquiry":
		resp, err = client.Inquiry(ctx, utils.SplitIDs(args[1:])...)
	default:
		return fmt.Errorf("unknown command %q\n%s", args[0], usage)
	}
	if err != nil {
		return err
	}
	return printResponse(stdout, resp)
}

func newClient(cfg *config.Config) *jkopay.Client {
	httpClient := &http.Client{
		Timeout:   jkopay.DefaultTimeout,
		Transport: logger.NewTransport(http.DefaultTransport, logger.L()),
	}
	logger.L().Debug("JKoPay client configured",
		zap.String("store_id", cfg.StoreID),
		zap.Bool("sandbox", cfg.Sandbox),
	)
	return jkopay.New(cfg.StoreID, cfg.APIKey, cfg.SecretKey, cfg.Sandbox,
		jkopay.WithHTTPClient(httpClient),
		jkopay.WithBaseURL(cfg.BaseURL),
	)
}

func runEntry(ctx context.Context, client *jkopay.Client, args []string, stderr io.Writer) (response, error) {
	fs := flag.NewFlagSet("entry", flag.ContinueOnError)
	fs.SetOutput(stderr)
	orderID := fs.String("order", "", "platform order id (generated when empty)")
	total := fs.Int64("total", 0, "original order amount")
	final := fs.Int64("final", 0, "amount actually charged")
	unredeem := fs.Int64("unredeem", 0, "amount that cannot be redeemed")
	validTime := fs.String("valid-time", "", `order deadline, "YYYY-mm-dd HH:MM" UTC+8`)
	confirmURL := fs.String("confirm-url", "", "order confirmation callback")
	resultURL := fs.String("result-url", "", "payment result callback")
	resultDisplayURL := fs.String("result-display-url", "", "page shown to the buyer afterwards")
	paymentType := fs.String("payment-type", "", "onetime or regular")
	escrow := fs.Bool("escrow", false, "enable escrow")
	if err := fs.Parse(args); err != nil {
		return nil, err
	}

	var opts jkopay.EntryOptions
	// Only flags given on the command line are forwarded.
	fs.Visit(func(f *flag.Flag) {
		switch f.Name {
		case "unredeem":
			opts.Unredeem = unredeem
		case "valid-time":
			opts.ValidTime = validTime
		case "confirm-url":
			opts.ConfirmURL = confirmURL
		case "result-url":
			opts.ResultURL = resultURL
		case "result-display-url":
			opts.ResultDisplayURL = resultDisplayURL
		case "payment-type":
			opts.PaymentType = jkopay.Ptr(jkopay.PaymentType(*paymentType))
		case "escrow":
			opts.Escrow = escrow
		}
	})

	if *orderID == "" {
		*orderID = utils.GenerateOrderID("ORD", time.Now())
		logger.FromCtx(ctx, nil).Info("Generated platform order id", zap.String("platform_order_id", *orderID))
	}

	return client.Entry(ctx, *orderID, *total, *final, opts)
}

func runRefund(ctx context.Context, client *jkopay.Client, args []string, stderr io.Writer) (response, error) {
	fs := flag.NewFlagSet("refund", flag.ContinueOnError)
	fs.SetOutput(stderr)
	orderID := fs.String("order", "", "platform order id to refund")
	amount := fs.Int64("amount", 0, "refund amount")
	if err := fs.Parse(args); err != nil {
		return nil, err
	}
	if *orderID == "" {
		return nil, errUsage
	}
	return client.Refund(ctx, *orderID, *amount)
}

func printResponse(w io.Writer, resp response) error {
	b, err := json.MarshalIndent(resp, "", "  ")
	if err != nil {
		return err
	}

	resultErr := resp.Err()
	if resultErr == nil {
		color.New(color.FgGreen).Fprintln(w, "result", jkopay.ResultSuccess)
	} else {
		color.New(color.FgRed).Fprintln(w, resultErr)
	}
	fmt.Fprintln(w, string(b))
	return resultErr
}
