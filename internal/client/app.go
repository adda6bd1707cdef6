// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package client

import (
	"context"
	"errors"
	"fmt"
	"os"
	"strconv"

	"github.com/MKhiriev/chain-vault/internal/cache"
	"github.com/MKhiriev/chain-vault/internal/config"
	"github.com/MKhiriev/chain-vault/internal/crypto"
	"github.com/MKhiriev/chain-vault/internal/ledger"
	"github.com/MKhiriev/chain-vault/internal/logger"
	"github.com/MKhiriev/chain-vault/internal/proof"
	"github.com/MKhiriev/chain-vault/internal/service"
	"github.com/MKhiriev/chain-vault/internal/store"
	"github.com/MKhiriev/chain-vault/internal/wallet"
	"github.com/MKhiriev/chain-vault/internal/workers"
	"github.com/MKhiriev/chain-vault/models"
)

var errUsage = errors.New("usage: chain-vault-client <seal|list|unseal|prove|export|import> [args]")

type App struct {
	vault    service.VaultService
	backup   service.BackupService
	proofJob workers.ProofJob

	logger *logger.Logger
}

func NewApp(cfg *config.ClientConfig, log *logger.Logger) (*App, error) {
	signer, err := wallet.NewDevWallet(cfg.Wallet.PrivateKeyHex)
	if err != nil {
		return nil, fmt.Errorf("create dev wallet: %w", err)
	}

	blobs, err := buildBlobStore(cfg.Blobs)
	if err != nil {
		return nil, fmt.Errorf("create blob store: %w", err)
	}

	registry := ledger.NewHTTPRegistry(ledger.HTTPRegistryConfig{
		BaseURL: cfg.Registry.URL,
		Timeout: cfg.Registry.RequestTimeout,
	})

	backend, err := buildProvingBackend(cfg.Proof)
	if err != nil {
		return nil, fmt.Errorf("create proving backend: %w", err)
	}

	db, err := cache.OpenSQLite(cfg.Cache.Path)
	if err != nil {
		return nil, fmt.Errorf("open envelope cache: %w", err)
	}
	envelopeCache := cache.NewEnvelopeRepository(db)

	vault, err := service.NewVaultService(service.VaultDeps{
		Signer:   signer,
		Keyring:  crypto.NewKeyringService(),
		Codec:    crypto.NewEnvelopeCodec(),
		Store:    blobs,
		Registry: registry,
		Backend:  backend,
		Cache:    envelopeCache,
	})
	if err != nil {
		return nil, fmt.Errorf("create vault service: %w", err)
	}

	backup, err := service.NewBackupService(signer.Address(), envelopeCache)
	if err != nil {
		return nil, fmt.Errorf("create backup service: %w", err)
	}

	return &App{
		vault:    vault,
		backup:   backup,
		proofJob: workers.NewProofJob(backend, cfg.Proof.QueueSize),
		logger:   log,
	}, nil
}

func (a *App) Run(ctx context.Context, args []string) error {
	if len(args) == 0 {
		return errUsage
	}

	a.proofJob.Start(ctx)
	defer a.proofJob.Stop()

	switch args[0] {
	case "seal":
		return a.seal(ctx, args[1:])
	case "list":
		return a.list(ctx)
	case "unseal":
		return a.unseal(ctx, args[1:])
	case "prove":
		return a.prove(args[1:])
	case "export":
		return a.exportBackup(ctx, args[1:])
	case "import":
		return a.importBackup(ctx, args[1:])
	default:
		return errUsage
	}
}

func (a *App) seal(ctx context.Context, args []string) error {
	if len(args) < 3 {
		return errors.New("usage: seal <site> <username> <secret>")
	}

	sealed, err := a.vault.SealItem(ctx, models.SecretRecord{
		Site:     args[0],
		Username: args[1],
		Secret:   args[2],
	})
	if err != nil && !errors.Is(err, service.ErrCacheMirror) {
		return err
	}
	if errors.Is(err, service.ErrCacheMirror) {
		a.logger.Warn().Err(err).Msg("item sealed but not mirrored locally")
	}

	fmt.Printf("sealed entry %d\n", sealed.EntryIndex)
	fmt.Printf("  content ref: %s\n", sealed.ContentRef)
	fmt.Printf("  tx handle:   %s\n", sealed.TxHandle)
	return nil
}

func (a *App) list(ctx context.Context) error {
	entries, err := a.vault.ListEntries(ctx)
	if err != nil {
		return err
	}

	for _, entry := range entries {
		fmt.Printf("%4d  %s\n", entry.EntryIndex, entry.ContentRef)
	}
	fmt.Printf("%d entries\n", len(entries))
	return nil
}

func (a *App) unseal(ctx context.Context, args []string) error {
	if len(args) < 1 {
		return errors.New("usage: unseal <entry-index>")
	}

	index, err := strconv.ParseUint(args[0], 10, 64)
	if err != nil {
		return fmt.Errorf("invalid entry index %q: %w", args[0], err)
	}

	entries, err := a.vault.ListEntries(ctx)
	if err != nil {
		return err
	}

	for _, entry := range entries {
		if entry.EntryIndex != index {
			continue
		}

		record, err := a.vault.UnsealItem(ctx, entry)
		if err != nil {
			return err
		}

		fmt.Printf("site:     %s\n", record.Site)
		fmt.Printf("username: %s\n", record.Username)
		fmt.Printf("secret:   %s\n", record.Secret)
		return nil
	}

	return fmt.Errorf("no ledger entry with index %d", index)
}

func (a *App) prove(args []string) error {
	if len(args) < 1 {
		return errors.New("usage: prove <password>")
	}

	results, err := a.proofJob.Submit([]byte(args[0]))
	if err != nil {
		return err
	}

	res := <-results
	if res.Err != nil {
		return res.Err
	}

	fmt.Printf("proof: %x\n", res.Proof.Proof)
	fmt.Printf("meets policy: %v\n", res.Proof.MeetsPolicy())
	return nil
}

func (a *App) exportBackup(ctx context.Context, args []string) error {
	if len(args) < 2 {
		return errors.New("usage: export <file> <passphrase>")
	}

	f, err := os.Create(args[0])
	if err != nil {
		return fmt.Errorf("create backup file: %w", err)
	}
	defer f.Close()

	if err := a.backup.ExportBackup(ctx, args[1], f); err != nil {
		return err
	}

	fmt.Printf("backup written to %s\n", args[0])
	return nil
}

func (a *App) importBackup(ctx context.Context, args []string) error {
	if len(args) < 2 {
		return errors.New("usage: import <file> <passphrase>")
	}

	f, err := os.Open(args[0])
	if err != nil {
		return fmt.Errorf("open backup file: %w", err)
	}
	defer f.Close()

	restored, err := a.backup.ImportBackup(ctx, args[1], f)
	if err != nil {
		return err
	}

	fmt.Printf("restored %d envelopes\n", restored)
	return nil
}

func buildBlobStore(cfg config.ClientBlobs) (store.ContentStore, error) {
	switch cfg.Backend {
	case config.BlobBackendIPFS:
		return store.NewIPFSStore(store.IPFSStoreConfig{
			Endpoint: cfg.IPFSEndpoint,
			Timeout:  cfg.RequestTimeout,
		})
	case config.BlobBackendGateway:
		return store.NewHTTPStore(store.HTTPStoreConfig{
			BaseURL:    cfg.GatewayURL,
			Timeout:    cfg.RequestTimeout,
			MaxRetries: cfg.MaxRetries,
		}), nil
	case config.BlobBackendMemory, "":
		return store.NewMemoryStore(), nil
	default:
		return nil, fmt.Errorf("unknown blob backend %q", cfg.Backend)
	}
}

func buildProvingBackend(cfg config.ClientProof) (proof.ProvingBackend, error) {
	switch cfg.Backend {
	case config.ProofBackendGnark:
		return proof.NewGnarkBackend()
	case config.ProofBackendFake, "":
		return proof.NewFakeBackend(), nil
	default:
		return nil, fmt.Errorf("unknown proof backend %q", cfg.Backend)
	}
}
