package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"path/filepath"

	"github.com/rs/zerolog"
	"github.com/shopspring/decimal"

	"github.com/anpt04/thuchi/internal/auth"
	"github.com/anpt04/thuchi/internal/config"
	"github.com/anpt04/thuchi/internal/directory"
	"github.com/anpt04/thuchi/internal/logger"
	"github.com/anpt04/thuchi/internal/model"
	"github.com/anpt04/thuchi/internal/prefs"
	"github.com/anpt04/thuchi/internal/repository"
	"github.com/anpt04/thuchi/internal/service"
	"github.com/anpt04/thuchi/internal/store/cloud"
	"github.com/anpt04/thuchi/internal/store/local"
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
}

func usage() {
	fmt.Fprintln(os.Stderr, `usage: thuchi [-user UID] <command> [flags]

commands:
  add            add a transaction
  list           list transactions
  categories     list categories
  add-category   add a category
  limit          get or set a monthly limit
  status         month spending vs limit
  reset          wipe local data and reseed defaults
  register       register-time seeding or migration`)
}

func run() error {
	userFlag := flag.String("user", "", "act as this signed-in user (requires firebase config)")
	flag.Usage = usage
	flag.Parse()
	if flag.NArg() < 1 {
		usage()
		return fmt.Errorf("missing command")
	}

	ctx := context.Background()
	log := logger.New()

	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("config: %w", err)
	}

	if err := os.MkdirAll(filepath.Dir(cfg.Database.Path), 0o755); err != nil {
		return fmt.Errorf("mkdir db dir: %w", err)
	}
	localStore, err := local.Open(cfg.Database.Path, log)
	if err != nil {
		return fmt.Errorf("open local store: %w", err)
	}
	defer localStore.Close()

	session := auth.NewSession()

	var cloudStore *cloud.Store
	if cfg.Firebase.ProjectID != "" {
		cloudStore, err = cloud.Dial(ctx, cfg.Firebase.ProjectID, cfg.Firebase.CredentialsFile, session, log)
		if err != nil {
			return fmt.Errorf("dial cloud store: %w", err)
		}
		defer cloudStore.Close()
	}
	if *userFlag != "" {
		if cloudStore == nil {
			return fmt.Errorf("-user needs firebase.project_id configured")
		}
		session.SignIn(*userFlag)
	}

	txRepo := repository.NewTransactions(localStore, cloudStore, session)
	catRepo := repository.NewCategories(localStore, cloudStore, session)
	limRepo := repository.NewLimits(localStore, cloudStore, session)

	dir := directory.New(catRepo, session, log)
	defer dir.Close()
	// warm the cache from the last snapshot, then load from the backend
	if cats, err := prefs.LoadCategories(); err == nil && len(cats) > 0 {
		dir.Set(cats)
	}
	if err := dir.Reload(ctx); err != nil {
		log.Warn().Err(err).Msg("initial category load failed")
	} else if err := prefs.SaveCategories(dir.Get()); err != nil {
		log.Warn().Err(err).Msg("category snapshot save failed")
	}

	budget := &service.Budget{Transactions: txRepo, Limits: limRepo}

	cmd, args := flag.Arg(0), flag.Args()[1:]
	switch cmd {
	case "add":
		return cmdAdd(ctx, args, txRepo, dir)
	case "list":
		return cmdList(ctx, txRepo, cfg)
	case "categories":
		return cmdCategories(ctx, catRepo)
	case "add-category":
		return cmdAddCategory(ctx, args, catRepo, dir)
	case "limit":
		return cmdLimit(ctx, args, limRepo, cfg)
	case "status":
		return cmdStatus(ctx, args, budget, cfg)
	case "reset":
		m := &service.Maintenance{Local: localStore}
		if err := m.ResetLocal(ctx); err != nil {
			return err
		}
		return dir.Reload(ctx)
	case "register":
		if cloudStore == nil {
			return fmt.Errorf("register needs firebase.project_id configured")
		}
		return cmdRegister(ctx, args, localStore, cloudStore, session, log)
	default:
		usage()
		return fmt.Errorf("unknown command %q", cmd)
	}
}

func cmdAdd(ctx context.Context, args []string, txRepo *repository.Transactions, dir *directory.Directory) error {
	fs := flag.NewFlagSet("add", flag.ExitOnError)
	kind := fs.String("kind", "expense", "income or expense")
	category := fs.String("category", "", "category id")
	amount := fs.String("amount", "", "amount")
	date := fs.String("date", "", "date YYYY-MM-DD")
	note := fs.String("note", "", "optional note")
	_ = fs.Parse(args)

	amt, err := decimal.NewFromString(*amount)
	if err != nil {
		return fmt.Errorf("amount: %w", err)
	}

	// snapshot the category name at write time
	var name string
	for _, c := range dir.Get() {
		if c.ID == *category {
			name = c.Name
			break
		}
	}
	if name == "" {
		return fmt.Errorf("unknown category %q", *category)
	}

	t, err := txRepo.Add(ctx, model.Transaction{
		Kind:         model.Kind(*kind),
		CategoryID:   *category,
		CategoryName: name,
		Amount:       amt,
		Date:         *date,
		Note:         *note,
	})
	if err != nil {
		return err
	}
	fmt.Printf("added %s\n", t.ID)
	return nil
}

func cmdList(ctx context.Context, txRepo *repository.Transactions, cfg config.Config) error {
	txs, err := txRepo.List(ctx)
	if err != nil {
		return err
	}
	for _, t := range txs {
		fmt.Printf("%s  %s  %-8s %s%s  %s  %s\n",
			t.ID, t.Date, t.Kind, cfg.UI.CurrencySymbol, t.Amount.String(), t.CategoryName, t.Note)
	}
	return nil
}

func cmdCategories(ctx context.Context, catRepo *repository.Categories) error {
	cats, err := catRepo.List(ctx)
	if err != nil {
		return err
	}
	for _, c := range cats {
		fmt.Printf("%-24s %-8s %s\n", c.ID, c.Kind, c.Name)
	}
	return nil
}

func cmdAddCategory(ctx context.Context, args []string, catRepo *repository.Categories, dir *directory.Directory) error {
	fs := flag.NewFlagSet("add-category", flag.ExitOnError)
	name := fs.String("name", "", "display name")
	kind := fs.String("kind", "expense", "income or expense")
	_ = fs.Parse(args)

	c, err := catRepo.Add(ctx, model.Category{Name: *name, Kind: model.Kind(*kind)})
	if err != nil {
		return err
	}
	_ = dir.Reload(ctx)
	fmt.Printf("added %s\n", c.ID)
	return nil
}

func cmdLimit(ctx context.Context, args []string, limRepo *repository.Limits, cfg config.Config) error {
	fs := flag.NewFlagSet("limit", flag.ExitOnError)
	month := fs.String("month", "", "month YYYY-MM")
	amount := fs.String("amount", "", "set the limit to this amount; omit to read")
	_ = fs.Parse(args)

	if *amount == "" {
		lim, err := limRepo.Get(ctx, *month)
		if err != nil {
			return err
		}
		if lim == nil {
			fmt.Printf("no limit for %s\n", *month)
			return nil
		}
		fmt.Printf("%s: %s%s\n", lim.Month, cfg.UI.CurrencySymbol, lim.Amount.String())
		return nil
	}
	amt, err := decimal.NewFromString(*amount)
	if err != nil {
		return fmt.Errorf("amount: %w", err)
	}
	return limRepo.Set(ctx, *month, amt)
}

func cmdStatus(ctx context.Context, args []string, budget *service.Budget, cfg config.Config) error {
	fs := flag.NewFlagSet("status", flag.ExitOnError)
	month := fs.String("month", "", "month YYYY-MM")
	_ = fs.Parse(args)

	st, err := budget.MonthStatus(ctx, *month)
	if err != nil {
		return err
	}
	fmt.Printf("%s spent %s%s", st.Month, cfg.UI.CurrencySymbol, st.Spent.String())
	if st.Limit != nil {
		fmt.Printf(" of %s%s", cfg.UI.CurrencySymbol, st.Limit.String())
		if st.Over {
			fmt.Print("  OVER LIMIT")
		}
	}
	fmt.Println()
	return nil
}

// cmdRegister mirrors the registration flow: the account and its profile are
// created first, then the user chooses between plain seeding and a full copy
// of local data, and either way the session ends signed out so the next
// sign-in starts from a fresh cloud view.
func cmdRegister(ctx context.Context, args []string, localStore *local.Store, cloudStore *cloud.Store, session *auth.Session, log zerolog.Logger) error {
	fs := flag.NewFlagSet("register", flag.ExitOnError)
	uid := fs.String("uid", "", "uid of the freshly created account")
	name := fs.String("name", "", "display name")
	email := fs.String("email", "", "email address")
	migrate := fs.Bool("migrate", false, "copy local data to the new account instead of just seeding")
	_ = fs.Parse(args)

	if *uid == "" {
		return fmt.Errorf("register: -uid is required")
	}

	session.SignIn(*uid)
	defer session.SignOut()

	if err := cloudStore.CreateUserProfile(ctx, *uid, model.Profile{Name: *name, Email: *email}); err != nil {
		return err
	}

	m := &service.Migrator{Local: localStore, Cloud: cloudStore, Log: log}
	if !*migrate {
		if err := m.Skip(ctx, *uid); err != nil {
			return err
		}
		fmt.Println("registered; default categories seeded")
		return nil
	}

	rep, err := m.Migrate(ctx, *uid)
	if err != nil {
		return err
	}
	if failed := rep.Failed(); len(failed) > 0 {
		fmt.Printf("registered; %d of %d records did not copy\n", len(failed), len(rep.Items))
		return nil
	}
	fmt.Printf("registered; %d records copied\n", len(rep.Items))
	return nil
}
