package routes

import (
	"context"
	"fmt"
	"strings"

	"akc_operations/internal/adapter/http/handlers"
	"akc_operations/internal/adapter/persistence/records"
	"akc_operations/internal/adapter/persistence/repository"
	"akc_operations/internal/adapter/persistence/tabular"
	"akc_operations/internal/config"
	"akc_operations/internal/domain/idgen"
	"akc_operations/internal/domain/statemachine"
	"akc_operations/internal/infrastructure/database"
	"akc_operations/internal/infrastructure/workspace"
	"akc_operations/internal/usecase"
)

// App holds the wired handlers.
type App struct {
	Projects    *handlers.ProjectHandler
	Estimates   *handlers.EstimateHandler
	Customers   *handlers.CustomerHandler
	Parties     *handlers.PartyHandler
	Submissions *handlers.SubmissionHandler
	Uploads     *handlers.UploadHandler
	Activity    *handlers.ActivityHandler
	Files       FileLocator
}

func build(ctx context.Context, cfg config.Config) (*App, func(), error) {
	store, cleanup, err := openStore(ctx, cfg.Storage)
	if err != nil {
		return nil, nil, err
	}

	schemas := records.NewSchemas(cfg.Sheets)
	if cfg.Storage.Bootstrap {
		if err := tabular.Bootstrap(ctx, store, schemas.All()...); err != nil {
			cleanup()
			return nil, nil, fmt.Errorf("bootstrap sheets: %w", err)
		}
	}

	ws, err := workspace.New(cfg.Folders, cfg.Templates)
	if err != nil {
		cleanup()
		return nil, nil, err
	}

	return wire(cfg, store, schemas, ws), cleanup, nil
}

func openStore(ctx context.Context, cfg config.StorageConfig) (tabular.Store, func(), error) {
	noop := func() {}
	switch strings.ToLower(strings.TrimSpace(cfg.Driver)) {
	case "memory":
		store, err := tabular.NewMemStore()
		return store, noop, err
	case "sqlite":
		db, err := database.OpenSQLite(ctx, cfg.SQLitePath)
		if err != nil {
			return nil, nil, err
		}
		store, err := tabular.NewSQLiteStore(ctx, db)
		if err != nil {
			_ = db.Close()
			return nil, nil, err
		}
		return store, func() { _ = db.Close() }, nil
	case "dynamodb", "":
		ddb, err := database.ConnectDynamoDB(ctx, cfg)
		if err != nil {
			return nil, nil, fmt.Errorf("connect dynamodb: %w", err)
		}
		if cfg.Bootstrap {
			if err := database.EnsureSheetsTable(ctx, ddb, cfg.DynamoTable); err != nil {
				return nil, nil, fmt.Errorf("create table %s: %w", cfg.DynamoTable, err)
			}
		}
		return tabular.NewDynamoStore(ddb, cfg.DynamoTable), noop, nil
	default:
		return nil, nil, fmt.Errorf("unknown storage driver %q", cfg.Driver)
	}
}

// wire assembles repositories, use cases and handlers over one store.
func wire(cfg config.Config, store tabular.Store, schemas records.Schemas, ws *workspace.Workspace) *App {
	projects := repository.NewProjectSheetRepository(store, schemas.Projects)
	estimates := repository.NewEstimateSheetRepository(store, schemas.Estimates)
	customers := repository.NewCustomerSheetRepository(store, schemas.Customers)
	vendors := repository.NewVendorSheetRepository(store, schemas.Vendors)
	subcontractors := repository.NewSubcontractorSheetRepository(store, schemas.Subcontractors)
	timeLogs := repository.NewTimeLogSheetRepository(store, schemas.TimeLogs)
	receipts := repository.NewMaterialsReceiptSheetRepository(store, schemas.MaterialsReceipts)
	subInvoices := repository.NewSubInvoiceSheetRepository(store, schemas.SubInvoices)
	activityLog := repository.NewActivityLogSheetRepository(store, schemas.ActivityLog)
	intents := repository.NewProjectIntentSheetRepository(store, schemas.ProjectIntents)

	var idOpts []idgen.Option
	if cfg.IDs.ProjectLegacyLastRow {
		idOpts = append(idOpts, idgen.WithLegacyProjectSequence())
	}
	ids := idgen.NewGenerator(repository.NewIDSource(store, schemas), idOpts...)

	machine := statemachine.Default()
	activity := usecase.NewActivityLogger(activityLog, ids)

	projectUC := usecase.NewProjectUseCase(usecase.ProjectDependencies{
		Projects:  projects,
		Customers: customers,
		Intents:   intents,
		IDs:       ids,
		Folders:   ws,
		Verifier: tabular.RetryPolicy{
			InitialInterval: cfg.Verify.InitialInterval,
			MaxInterval:     cfg.Verify.MaxInterval,
			Timeout:         cfg.Verify.Timeout,
		},
		Activity: activity,
		Machine:  machine,
	}, usecase.ProjectSettings{ParentFolderID: cfg.Folders.ParentID, ShareDomain: cfg.Folders.ShareDomain})

	estimateUC := usecase.NewEstimateUseCase(usecase.EstimateDependencies{
		Estimates: estimates,
		Projects:  projects,
		Customers: customers,
		IDs:       ids,
		Renderer:  ws,
		Activity:  activity,
		Machine:   machine,
	}, usecase.EstimateSettings{TemplateID: cfg.Templates.EstimateTemplateID, FilePrefix: cfg.Templates.FilePrefix})

	customerUC := usecase.NewCustomerUseCase(customers, projects, estimates, ids, activity)
	partyUC := usecase.NewPartyUseCase(vendors, subcontractors, ids, activity)
	submissionUC := usecase.NewSubmissionUseCase(usecase.SubmissionDependencies{
		Projects:    projects,
		TimeLogs:    timeLogs,
		Receipts:    receipts,
		SubInvoices: subInvoices,
		IDs:         ids,
		Activity:    activity,
	})
	uploadUC := usecase.NewUploadUseCase(ws, activity, usecase.UploadSettings{
		MaxFileSize:      cfg.Upload.MaxFileSize,
		AllowedMIMETypes: cfg.Upload.AllowedMIMETypes,
	})

	return &App{
		Projects:    handlers.NewProjectHandler(projectUC),
		Estimates:   handlers.NewEstimateHandler(estimateUC),
		Customers:   handlers.NewCustomerHandler(customerUC),
		Parties:     handlers.NewPartyHandler(partyUC),
		Submissions: handlers.NewSubmissionHandler(submissionUC),
		Uploads:     handlers.NewUploadHandler(uploadUC),
		Activity:    handlers.NewActivityHandler(activity),
		Files:       ws,
	}
}
