package service

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/alexanderramin/cadence/internal/db"
	"github.com/alexanderramin/cadence/internal/importer"
	"github.com/alexanderramin/cadence/internal/repository"
)

type importService struct {
	uow db.UnitOfWork
}

// NewImportService creates the batch importer. All creations from one file
// happen inside a single transaction.
func NewImportService(uow db.UnitOfWork) ImportService {
	return &importService{uow: uow}
}

func (s *importService) ImportFile(ctx context.Context, path string) (*ImportResult, error) {
	schema, err := importer.LoadImportSchema(path)
	if err != nil {
		return nil, fmt.Errorf("loading import file: %w", err)
	}

	if errs := importer.ValidateImportSchema(schema); len(errs) > 0 {
		return nil, formatValidationErrors(errs)
	}

	activities, err := importer.Convert(schema)
	if err != nil {
		return nil, fmt.Errorf("converting import file: %w", err)
	}

	result := &ImportResult{}
	err = s.uow.WithinTx(ctx, func(ctx context.Context, tx db.DBTX) error {
		repo := repository.NewSQLiteActivityRepo(tx)
		for _, a := range activities {
			if err := a.Validate(); err != nil {
				return fmt.Errorf("activity %q: %w", a.Name, err)
			}
			if err := repo.Create(ctx, a); err != nil {
				return fmt.Errorf("creating activity %q: %w", a.Name, err)
			}
			result.Created++
			result.Names = append(result.Names, a.Name)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	return result, nil
}

func formatValidationErrors(errs []error) error {
	msgs := make([]string, 0, len(errs))
	for _, e := range errs {
		msgs = append(msgs, "  - "+e.Error())
	}
	return errors.New("import file is invalid:\n" + strings.Join(msgs, "\n"))
}
