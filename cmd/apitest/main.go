// apitest exercises the Tradier API endpoints from the command line and
// prints the resulting record sets as tables. Intended for manually checking
// credentials and endpoint behavior against the sandbox.
//
// Usage:
//
//	apitest --config configs/apitest.example.yaml quote SPY
//	apitest positions --equities
//	apitest history --type trade --start 2024-01-01
//
// Without --config, credentials come from TRADIER_ACCOUNT_NUMBER,
// TRADIER_AUTH_TOKEN and TRADIER_ENVIRONMENT (a .env file is honored).
package main

import (
	"errors"
	"fmt"
	"os"

	"github.com/joho/godotenv"
	"github.com/olekukonko/tablewriter"
	log "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/Lumiwealth/lumiwealth-tradier/internal/config"
	"github.com/Lumiwealth/lumiwealth-tradier/internal/version"
	"github.com/Lumiwealth/lumiwealth-tradier/record"
	"github.com/Lumiwealth/lumiwealth-tradier/tradier"
)

var configPath string

func main() {
	// Missing .env is fine; environment variables may be set directly.
	_ = godotenv.Load()

	root := &cobra.Command{
		Use:           "apitest",
		Short:         "Exercise Tradier API endpoints and print the results",
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	root.PersistentFlags().StringVar(&configPath, "config", "", "path to YAML config file")

	root.AddCommand(
		profileCmd(),
		balanceCmd(),
		gainLossCmd(),
		historyCmd(),
		ordersCmd(),
		orderCmd(),
		positionsCmd(),
		barsCmd(),
		quoteCmd(),
		timesalesCmd(),
		searchCmd(),
		versionCmd(),
	)

	if err := root.Execute(); err != nil {
		log.Error(err)
		os.Exit(1)
	}
}

func newClient() (*tradier.Client, error) {
	var (
		cfg *config.Config
		err error
	)
	if configPath != "" {
		cfg, err = config.LoadAndValidate(configPath)
		if err != nil {
			return nil, err
		}
	} else {
		cfg = config.FromEnv()
		if err := cfg.Validate(); err != nil {
			return nil, fmt.Errorf("no --config given and environment is incomplete: %w", err)
		}
	}

	level, err := log.ParseLevel(cfg.Logging.Level)
	if err != nil {
		return nil, err
	}
	log.SetLevel(level)

	env := tradier.EnvPaper
	if cfg.API.Environment == "live" {
		env = tradier.EnvLive
	}

	return tradier.New(cfg.Account.Number, cfg.Account.Token,
		tradier.WithEnvironment(env),
		tradier.WithTimeout(cfg.API.Timeout),
		tradier.WithLogger(log.StandardLogger()),
	), nil
}

// render prints a record set as a table, one column per record column.
func render(set *record.Set) {
	table := tablewriter.NewWriter(os.Stdout)
	table.SetHeader(set.Columns())

	for i := 0; i < set.Len(); i++ {
		row := make([]string, 0, len(set.Columns()))
		for _, col := range set.Columns() {
			v := set.Value(i, col)
			if v == record.Missing {
				row = append(row, "")
				continue
			}
			row = append(row, fmt.Sprintf("%v", v))
		}
		table.Append(row)
	}

	table.Render()
	fmt.Printf("%d row(s)\n", set.Len())
}

func runAndRender(fetch func(*tradier.Client) (*record.Set, error)) error {
	client, err := newClient()
	if err != nil {
		return err
	}
	set, err := fetch(client)
	if err != nil {
		return err
	}
	render(set)
	return nil
}

func profileCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "profile",
		Short: "Fetch the user profile",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runAndRender(func(c *tradier.Client) (*record.Set, error) {
				return c.GetUserProfile(cmd.Context())
			})
		},
	}
}

func balanceCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "balance",
		Short: "Fetch the account balance",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runAndRender(func(c *tradier.Client) (*record.Set, error) {
				return c.GetAccountBalance(cmd.Context())
			})
		},
	}
}

func gainLossCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "gainloss",
		Short: "Fetch closed-position cost basis information",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runAndRender(func(c *tradier.Client) (*record.Set, error) {
				return c.GetGainLoss(cmd.Context())
			})
		},
	}
}

func historyCmd() *cobra.Command {
	var (
		activityType string
		symbol       string
		start, end   string
		limit        int
	)
	cmd := &cobra.Command{
		Use:   "history",
		Short: "Fetch account activity history",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			opts := tradier.HistoryOptions{
				ActivityType: activityType,
				Symbol:       symbol,
				Limit:        limit,
			}
			if start != "" {
				opts.Start = tradier.DateString(start)
			}
			if end != "" {
				opts.End = tradier.DateString(end)
			}
			return runAndRender(func(c *tradier.Client) (*record.Set, error) {
				return c.GetHistory(cmd.Context(), opts)
			})
		},
	}
	cmd.Flags().StringVar(&activityType, "type", "", "activity type filter (trade, option, ach, ...)")
	cmd.Flags().StringVar(&symbol, "symbol", "", "symbol filter")
	cmd.Flags().StringVar(&start, "start", "", "start date (YYYY-MM-DD)")
	cmd.Flags().StringVar(&end, "end", "", "end date (YYYY-MM-DD)")
	cmd.Flags().IntVar(&limit, "limit", 0, "max rows (broker default 25)")
	return cmd
}

func ordersCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "orders",
		Short: "Fetch all open and filled orders",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			err := runAndRender(func(c *tradier.Client) (*record.Set, error) {
				return c.GetOrders(cmd.Context())
			})
			if err != nil && isEmpty(err) {
				fmt.Println("no current orders")
				return nil
			}
			return err
		},
	}
}

func orderCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "order <id>",
		Short: "Fetch a single order by id",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runAndRender(func(c *tradier.Client) (*record.Set, error) {
				return c.GetOrder(cmd.Context(), args[0])
			})
		},
	}
}

func positionsCmd() *cobra.Command {
	var (
		symbols  []string
		equities bool
		options  bool
	)
	cmd := &cobra.Command{
		Use:   "positions",
		Short: "Fetch account positions",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			err := runAndRender(func(c *tradier.Client) (*record.Set, error) {
				return c.GetPositions(cmd.Context(), tradier.PositionsOptions{
					Symbols:  symbols,
					Equities: equities,
					Options:  options,
				})
			})
			if err != nil && isEmpty(err) {
				fmt.Println("no open positions")
				return nil
			}
			return err
		},
	}
	cmd.Flags().StringSliceVar(&symbols, "symbols", nil, "keep only these symbols")
	cmd.Flags().BoolVar(&equities, "equities", false, "keep only equity positions (symbol length heuristic)")
	cmd.Flags().BoolVar(&options, "options", false, "keep only option positions (symbol length heuristic)")
	return cmd
}

func barsCmd() *cobra.Command {
	var (
		interval   string
		start, end string
	)
	cmd := &cobra.Command{
		Use:   "bars <symbol>",
		Short: "Fetch historical bars",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			opts := tradier.HistoricalQuotesOptions{
				Interval: tradier.Interval(interval),
			}
			if start != "" {
				opts.Start = tradier.DateString(start)
			}
			if end != "" {
				opts.End = tradier.DateString(end)
			}
			return runAndRender(func(c *tradier.Client) (*record.Set, error) {
				return c.GetHistoricalQuotes(cmd.Context(), args[0], opts)
			})
		},
	}
	cmd.Flags().StringVar(&interval, "interval", "", "bar width: daily, weekly or monthly")
	cmd.Flags().StringVar(&start, "start", "", "start date (YYYY-MM-DD, defaults to Monday of the trading week)")
	cmd.Flags().StringVar(&end, "end", "", "end date (YYYY-MM-DD, defaults to today)")
	return cmd
}

func quoteCmd() *cobra.Command {
	var lastOnly bool
	cmd := &cobra.Command{
		Use:   "quote <symbol>",
		Short: "Fetch the current day quote",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if lastOnly {
				client, err := newClient()
				if err != nil {
					return err
				}
				last, err := client.GetLastPrice(cmd.Context(), args[0])
				if err != nil {
					return err
				}
				fmt.Println(last)
				return nil
			}
			return runAndRender(func(c *tradier.Client) (*record.Set, error) {
				return c.GetQuoteDay(cmd.Context(), args[0])
			})
		},
	}
	cmd.Flags().BoolVar(&lastOnly, "last", false, "print only the last traded price")
	return cmd
}

func timesalesCmd() *cobra.Command {
	var (
		interval   string
		start, end string
	)
	cmd := &cobra.Command{
		Use:   "timesales <symbol>",
		Short: "Fetch time-and-sales ticks",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runAndRender(func(c *tradier.Client) (*record.Set, error) {
				return c.GetTimeSales(cmd.Context(), args[0], tradier.TimeSalesOptions{
					Interval: interval,
					Start:    start,
					End:      end,
				})
			})
		},
	}
	cmd.Flags().StringVar(&interval, "interval", "", "tick width (default 1min)")
	cmd.Flags().StringVar(&start, "start", "", "window start (YYYY-MM-DD HH:MM)")
	cmd.Flags().StringVar(&end, "end", "", "window end (YYYY-MM-DD HH:MM)")
	return cmd
}

func searchCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "search <query>",
		Short: "Free-text security search",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			client, err := newClient()
			if err != nil {
				return err
			}
			set, found, err := client.SearchCompanies(cmd.Context(), args[0])
			if err != nil {
				return err
			}
			if !found {
				fmt.Println("no matching securities")
				return nil
			}
			render(set)
			return nil
		},
	}
}

func versionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print version information",
		Args:  cobra.NoArgs,
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Println(version.String())
		},
	}
}

func isEmpty(err error) bool {
	return errors.Is(err, tradier.ErrEmptyResult)
}
