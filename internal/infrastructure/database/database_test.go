package database

import (
	"context"
	"errors"
	"path/filepath"
	"testing"

	appconfig "akc_operations/internal/config"

	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
)

type fakeCreator struct {
	err   error
	input *dynamodb.CreateTableInput
}

func (f *fakeCreator) CreateTable(_ context.Context, in *dynamodb.CreateTableInput, _ ...func(*dynamodb.Options)) (*dynamodb.CreateTableOutput, error) {
	f.input = in
	return &dynamodb.CreateTableOutput{}, f.err
}

func TestEnsureSheetsTable(t *testing.T) {
	t.Run("creates table keyed by sheet and row", func(t *testing.T) {
		f := &fakeCreator{}
		if err := EnsureSheetsTable(context.Background(), f, "sheet_rows"); err != nil {
			t.Fatalf("expected no error, got %v", err)
		}
		if len(f.input.KeySchema) != 2 || *f.input.KeySchema[0].AttributeName != "sheet" || *f.input.KeySchema[1].AttributeName != "row" {
			t.Fatalf("unexpected key schema %+v", f.input.KeySchema)
		}
	})

	t.Run("existing table is not an error", func(t *testing.T) {
		f := &fakeCreator{err: &types.ResourceInUseException{}}
		if err := EnsureSheetsTable(context.Background(), f, "sheet_rows"); err != nil {
			t.Fatalf("expected no error, got %v", err)
		}
	})

	t.Run("other errors propagate", func(t *testing.T) {
		boom := errors.New("boom")
		f := &fakeCreator{err: boom}
		if err := EnsureSheetsTable(context.Background(), f, "sheet_rows"); !errors.Is(err, boom) {
			t.Fatalf("expected boom, got %v", err)
		}
	})
}

func TestNewDynamoDBConfig(t *testing.T) {
	cfg, err := NewDynamoDBConfig(context.Background(), appconfig.StorageConfig{
		DynamoRegion:   "us-west-2",
		DynamoEndpoint: "http://localhost:8000",
		AccessKeyID:    "local",
		SecretKey:      "local",
	})
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
	if cfg.Region != "us-west-2" {
		t.Fatalf("expected region us-west-2, got %s", cfg.Region)
	}
}

func TestOpenSQLite(t *testing.T) {
	db, err := OpenSQLite(context.Background(), filepath.Join(t.TempDir(), "akc.db"))
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
	defer db.Close()

	var mode string
	if err := db.QueryRow("PRAGMA journal_mode").Scan(&mode); err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
	if mode != "wal" {
		t.Fatalf("expected wal journal mode, got %s", mode)
	}
}
