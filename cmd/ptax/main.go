// Command ptax prints the PTAX conversion disclosure for a USD amount.
//
//	ptax --input 6774.00
//	ptax --input 1000.00 --date 02012025
//	ptax --input 50000.00 --date 07082025 -v
package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"math"
	"os"
	"os/signal"
	"strings"
	"time"

	"github.com/fatih/color"
	"github.com/shopspring/decimal"
	"github.com/spf13/pflag"
	"go.uber.org/zap"

	"ptaxservice/internal/config"
	"ptaxservice/internal/provider"
	"ptaxservice/internal/service"
)

const usageExamples = `
Exemplos de uso:
  ptax --input 6774.00
  ptax --input 1000.00 --date 02012025
  ptax --input 50000.00 --date 07082025
`

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	code := run(ctx, os.Args[1:], os.Stdout, os.Stderr)
	stop()
	os.Exit(code)
}

type options struct {
	input   float64
	date    string
	verbose bool
}

func parseFlags(args []string, stderr io.Writer) (*options, error) {
	var opts options
	fs := pflag.NewFlagSet("ptax", pflag.ContinueOnError)
	// Parse errors are reported once, by fail.
	fs.SetOutput(io.Discard)
	fs.Float64Var(&opts.input, "input", 0, "Valor em dólares (ex: 6774.00)")
	fs.StringVar(&opts.date, "date", "", "Data no formato DDMMYYYY (opcional, padrão: hoje). A cotação será buscada do dia anterior.")
	fs.BoolVarP(&opts.verbose, "verbose", "v", false, "Mostra informações detalhadas")
	fs.Usage = func() {}

	if err := fs.Parse(args); err != nil {
		if errors.Is(err, pflag.ErrHelp) {
			printUsage(stderr, fs)
		}
		return nil, err
	}
	if !fs.Changed("input") {
		printUsage(stderr, fs)
		return nil, fmt.Errorf("%w: --input é obrigatório", service.ErrInvalidAmount)
	}
	if math.IsNaN(opts.input) || math.IsInf(opts.input, 0) {
		return nil, fmt.Errorf("%w: %v is not a finite number", service.ErrInvalidAmount, opts.input)
	}
	return &opts, nil
}

func printUsage(w io.Writer, fs *pflag.FlagSet) {
	fmt.Fprintln(w, "Gerador de Descrição de Conversão de Moeda")
	fmt.Fprintln(w)
	fmt.Fprint(w, fs.FlagUsages())
	fmt.Fprint(w, usageExamples)
}

func run(ctx context.Context, args []string, stdout, stderr io.Writer) int {
	opts, err := parseFlags(args, stderr)
	if errors.Is(err, pflag.ErrHelp) {
		return 0
	}
	if err != nil {
		return fail(stderr, err)
	}

	cfg, err := config.LoadConfig()
	if err != nil {
		return fail(stderr, err)
	}
	loc := cfg.Location()

	logger := zap.NewNop()
	if opts.verbose {
		zcfg := zap.NewDevelopmentConfig()
		zcfg.OutputPaths = []string{"stderr"}
		if l, lerr := zcfg.Build(); lerr == nil {
			logger = l
		}
	}
	defer func() { _ = logger.Sync() }()
	sugar := logger.Sugar()

	usd := decimal.NewFromFloat(opts.input)
	if err := service.ValidateAmount(usd); err != nil {
		return fail(stderr, err)
	}
	refDate, err := service.ParseReferenceDate(opts.date, loc)
	if err != nil {
		return fail(stderr, err)
	}

	sgs := provider.NewSGSProvider(cfg.SGS.BaseURL, cfg.SGS.Series, cfg.SGS.Timeout, cfg.SGS.UserAgent)
	resolver := service.NewPTAXResolver(provider.NewLoggedRatesProvider(sgs, sugar, "sgs"), loc)
	svc := service.NewConversionService(resolver, sugar)

	if opts.verbose {
		ref := time.Now().In(loc)
		if refDate != nil {
			ref = *refDate
		}
		fmt.Fprintf(stdout, "Data de referência: %s\n", ref.Format(service.DateLayout))
		fmt.Fprintf(stdout, "Buscando cotação de: %s\n\n", resolver.QuotationDate(refDate).Format(service.DateLayout))
		fmt.Fprintln(stdout, "Gerador de Descrição de Conversão de Moeda")
		fmt.Fprintln(stdout, strings.Repeat("=", 50))
		fmt.Fprintf(stdout, "Valor em USD: %s\n\n", service.FormatCurrency(usd, service.SymbolUSD))
	}

	res, err := svc.Convert(ctx, service.ConversionRequest{
		USDAmount:     usd,
		ReferenceDate: refDate,
		ShowSource:    opts.verbose,
	})
	if err != nil {
		return fail(stderr, err)
	}

	if opts.verbose {
		fmt.Fprintln(stdout, "Texto gerado:")
		fmt.Fprintln(stdout, strings.Repeat("-", 30))
	}
	fmt.Fprintln(stdout, res.Text)
	return 0
}

// fail prints err behind the error marker and returns the exit status.
func fail(stderr io.Writer, err error) int {
	var msg string
	switch {
	case errors.Is(err, service.ErrDateFormat):
		msg = "Data deve estar no formato DDMMYYYY (ex: 02012025)"
	case errors.Is(err, service.ErrInvalidDate):
		msg = "Data inválida - " + err.Error()
	case errors.Is(err, service.ErrInvalidAmount):
		msg = "Valor inválido - " + err.Error()
	case errors.Is(err, service.ErrRateUnavailable):
		msg = "Erro ao gerar texto: " + err.Error()
	default:
		msg = err.Error()
	}
	_, _ = color.New(color.FgRed, color.Bold).Fprintf(stderr, "❌ Erro: %s\n", msg)
	return 1
}
