package repository

import (
	"context"
	"sort"

	"cloud.google.com/go/firestore"
	"github.com/m-mizutani/ctxlog"
	"github.com/m-mizutani/goerr/v2"
	"github.com/secmon-lab/idwatch/pkg/domain/interfaces"
	"github.com/secmon-lab/idwatch/pkg/domain/model"
	"github.com/secmon-lab/idwatch/pkg/domain/types"
	"google.golang.org/api/iterator"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
)

const (
	alertStatesCollection = "alert_states"
)

// Firestore implements Repository interface with Firestore
type Firestore struct {
	client *firestore.Client
}

// NewFirestore creates a new Firestore repository
func NewFirestore(ctx context.Context, projectID, databaseID string) (interfaces.Repository, error) {
	logger := ctxlog.From(ctx)

	client, err := firestore.NewClientWithDatabase(ctx, projectID, databaseID)
	if err != nil {
		return nil, goerr.Wrap(err, "failed to create firestore client")
	}

	// Fail fast on invalid project or missing permissions
	_, err = client.Collection(alertStatesCollection).Limit(1).Documents(ctx).Next()
	if err != nil && err != iterator.Done {
		if status.Code(err) == codes.PermissionDenied || status.Code(err) == codes.Unauthenticated {
			_ = client.Close()
			return nil, goerr.Wrap(err, "failed to connect to firestore project",
				goerr.V("firestore error code", status.Code(err).String()),
			)
		}
		logger.Debug("Firestore connection test returned error (may be empty collection)",
			"error", err,
			"errorCode", status.Code(err).String(),
		)
	}

	logger.Info("Firestore repository initialized successfully",
		"projectID", projectID,
		"databaseID", databaseID,
	)

	return &Firestore{
		client: client,
	}, nil
}

// GetAlertState retrieves the alert state of a table
func (f *Firestore) GetAlertState(ctx context.Context, table types.TableName) (*model.AlertState, error) {
	if table == "" {
		return nil, goerr.New("table name is empty")
	}

	doc, err := f.client.Collection(alertStatesCollection).Doc(table.String()).Get(ctx)
	if err != nil {
		if status.Code(err) == codes.NotFound {
			return nil, goerr.Wrap(model.ErrAlertStateMissing, "no alert state for table", goerr.V("table", table))
		}
		return nil, goerr.Wrap(err, "failed to get alert state from firestore", goerr.V("table", table))
	}

	var state model.AlertState
	if err := doc.DataTo(&state); err != nil {
		return nil, goerr.Wrap(err, "failed to decode alert state", goerr.V("table", table))
	}

	return &state, nil
}

// PutAlertState saves the alert state of a table
func (f *Firestore) PutAlertState(ctx context.Context, state *model.AlertState) error {
	if state == nil {
		return goerr.New("alert state is nil")
	}
	if state.Table == "" {
		return goerr.New("table name is empty")
	}

	_, err := f.client.Collection(alertStatesCollection).Doc(state.Table.String()).Set(ctx, state)
	if err != nil {
		return goerr.Wrap(err, "failed to save alert state to firestore", goerr.V("table", state.Table))
	}

	return nil
}

// ListAlertStates lists all alert states ordered by table name
func (f *Firestore) ListAlertStates(ctx context.Context) ([]*model.AlertState, error) {
	iter := f.client.Collection(alertStatesCollection).Documents(ctx)
	defer iter.Stop()

	var states []*model.AlertState
	for {
		doc, err := iter.Next()
		if err == iterator.Done {
			break
		}
		if err != nil {
			return nil, goerr.Wrap(err, "failed to iterate alert states")
		}

		var state model.AlertState
		if err := doc.DataTo(&state); err != nil {
			return nil, goerr.Wrap(err, "failed to decode alert state", goerr.V("docID", doc.Ref.ID))
		}
		states = append(states, &state)
	}

	sort.Slice(states, func(i, j int) bool {
		return states[i].Table < states[j].Table
	})

	return states, nil
}

// Close closes the Firestore client
func (f *Firestore) Close() error {
	return f.client.Close()
}
