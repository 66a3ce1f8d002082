// cmd/crm-engine/main.go
package main

import (
	"context"
	"database/sql"
	"log"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"
	_ "github.com/lib/pq"

	"github.com/abhisheksingh01-ai/Nexware-CRM/internal/app/engine"
	"github.com/abhisheksingh01-ai/Nexware-CRM/internal/config"
	"github.com/abhisheksingh01-ai/Nexware-CRM/internal/domain/account"
	"github.com/abhisheksingh01-ai/Nexware-CRM/internal/domain/audit"
	"github.com/abhisheksingh01-ai/Nexware-CRM/internal/domain/role"
	"github.com/abhisheksingh01-ai/Nexware-CRM/internal/infra/cloudinary"
	"github.com/abhisheksingh01-ai/Nexware-CRM/internal/infra/kafka"
	"github.com/abhisheksingh01-ai/Nexware-CRM/internal/infra/postgres"
	"github.com/abhisheksingh01-ai/Nexware-CRM/internal/ports/assets"
	"github.com/abhisheksingh01-ai/Nexware-CRM/internal/ports/crypto"
	"github.com/abhisheksingh01-ai/Nexware-CRM/internal/ports/events"
	"github.com/abhisheksingh01-ai/Nexware-CRM/internal/ports/repository"
)

func main() {
	// .env is optional; real deployments set the environment directly.
	_ = godotenv.Load()
	cfg := config.Load()

	ctx := context.Background()

	db, err := sql.Open("postgres", cfg.GetDBURL())
	if err != nil {
		log.Fatalf("open database: %v", err)
	}
	defer db.Close()
	if err := db.PingContext(ctx); err != nil {
		log.Fatalf("ping database: %v", err)
	}
	if err := postgres.Migrate(ctx, db); err != nil {
		log.Fatalf("migrate: %v", err)
	}

	var sink events.Publisher
	if cfg.KAFKA_BROKER != "" && cfg.KAFKA_TOPIC != "" {
		producer := kafka.NewProducer(cfg.KAFKA_BROKER, cfg.KAFKA_TOPIC)
		defer producer.Close()
		sink = producer
	}

	var assetStore assets.AssetStore
	if cfg.CLOUDINARY_URL != "" {
		assetStore, err = cloudinary.New(cfg.CLOUDINARY_URL)
		if err != nil {
			log.Fatalf("cloudinary: %v", err)
		}
	}

	hasher := crypto.NewArgon2Hasher(crypto.DefaultParams)
	accounts := postgres.NewAccountStore(db)
	audits := postgres.NewAuditStore(db)

	eng := engine.New(engine.Stores{
		Accounts:  accounts,
		Leads:     postgres.NewLeadStore(db),
		Orders:    postgres.NewOrderStore(db),
		Products:  postgres.NewProductStore(db),
		Audits:    audits,
		TxManager: postgres.NewTxManager(db),
	}, hasher, assetStore, sink)

	if err := bootstrapAdmin(ctx, cfg, accounts, audits, hasher); err != nil {
		log.Fatalf("bootstrap admin: %v", err)
	}

	run(eng)
}

// run blocks until the process is signalled. The engine is handed to
// whatever transport the deployment compiles in; without one this
// binary still migrates the schema and seeds the first admin.
func run(_ *engine.Engine) {
	stop := make(chan os.Signal, 1)
	signal.Notify(stop, syscall.SIGINT, syscall.SIGTERM)
	log.Println("workflow engine ready")
	<-stop
	log.Println("shutting down")
}

// bootstrapAdmin seeds the first admin when the account table is empty,
// so the engine never starts in a state the admin-safety guard would
// make unrecoverable.
func bootstrapAdmin(ctx context.Context, cfg *config.Config, accounts repository.AccountStore, audits repository.AuditStore, hasher crypto.PasswordHasher) error {
	n, err := accounts.CountAccounts(ctx, account.Filter{})
	if err != nil {
		return err
	}
	if n > 0 {
		return nil
	}
	if cfg.BOOTSTRAP_ADMIN_EMAIL == "" || cfg.BOOTSTRAP_ADMIN_PASSWORD == "" {
		log.Println("no accounts exist and no bootstrap admin configured")
		return nil
	}
	if err := account.ValidatePassword(cfg.BOOTSTRAP_ADMIN_PASSWORD); err != nil {
		return err
	}

	name := cfg.BOOTSTRAP_ADMIN_NAME
	if name == "" {
		name = "Administrator"
	}
	admin, err := account.New(account.NewParams{
		Name:   name,
		Email:  cfg.BOOTSTRAP_ADMIN_EMAIL,
		Role:   role.RoleAdmin,
		Status: account.StatusActive,
	}, time.Now().UTC())
	if err != nil {
		return err
	}
	admin.PasswordHash, err = hasher.HashPassword(ctx, cfg.BOOTSTRAP_ADMIN_PASSWORD)
	if err != nil {
		return err
	}
	if err := accounts.CreateAccount(ctx, admin); err != nil {
		return err
	}

	log.Printf("bootstrap admin %s created", admin.Email)
	return audits.Append(ctx, audit.New(nil, audit.ActionAccountCreated, &admin.ID, map[string]any{
		"role":      role.RoleAdmin,
		"bootstrap": true,
	}))
}
