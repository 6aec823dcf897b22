package dynamodb

import (
	"context"
	"math"

	"notes-api/internal/models"
	"notes-api/internal/repositories"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
	"github.com/sirupsen/logrus"
)

// NoteRepository implements repositories.NoteRepository against a DynamoDB
// table keyed by noteId.
type NoteRepository struct {
	client Client
	table  string
	logger *logrus.Logger
}

// NewNoteRepository creates a repository bound to table
func NewNoteRepository(client Client, table string, logger *logrus.Logger) *NoteRepository {
	if logger == nil {
		logger = logrus.New()
	}
	return &NoteRepository{
		client: client,
		table:  table,
		logger: logger,
	}
}

// Table returns the bound table name
func (r *NoteRepository) Table() string {
	return r.table
}

// Scan issues a single unfiltered Scan with Limit set. Numbers are decoded
// as attributevalue.Number so their precision survives until encoding.
func (r *NoteRepository) Scan(ctx context.Context, limit int) ([]models.Item, error) {
	if err := repositories.ValidateLimit(limit); err != nil {
		return nil, err
	}
	if limit > math.MaxInt32 {
		limit = math.MaxInt32
	}

	out, err := r.client.Scan(ctx, &dynamodb.ScanInput{
		TableName: aws.String(r.table),
		Limit:     aws.Int32(int32(limit)),
	})
	if err != nil {
		r.logFailure("scan", "", err)
		return nil, repositories.NewRepositoryError("scan", "note", "", err)
	}

	items := make([]models.Item, 0, len(out.Items))
	for _, av := range out.Items {
		var doc map[string]interface{}
		err := attributevalue.UnmarshalMapWithOptions(av, &doc, func(o *attributevalue.DecoderOptions) {
			o.UseNumber = true
		})
		if err != nil {
			return nil, repositories.NewRepositoryError("scan", "note", "", err)
		}
		items = append(items, models.Item(doc))
	}

	r.logger.WithFields(logrus.Fields{
		"operation": "scan",
		"table":     r.table,
		"limit":     limit,
		"count":     len(items),
	}).Debug("Store operation executed")

	return items, nil
}

// Put writes the full note item
func (r *NoteRepository) Put(ctx context.Context, note *models.Note) error {
	if err := note.Validate(); err != nil {
		id := ""
		if note != nil {
			id = note.NoteID
		}
		return repositories.ValidationError("note", id, err)
	}

	av, err := attributevalue.MarshalMap(note)
	if err != nil {
		return repositories.NewRepositoryError("put", "note", note.NoteID, err)
	}

	_, err = r.client.PutItem(ctx, &dynamodb.PutItemInput{
		TableName: aws.String(r.table),
		Item:      av,
	})
	if err != nil {
		r.logFailure("put", note.NoteID, err)
		return repositories.NewRepositoryError("put", "note", note.NoteID, err)
	}

	r.logger.WithFields(logrus.Fields{
		"operation": "put",
		"table":     r.table,
		"note_id":   note.NoteID,
	}).Debug("Store operation executed")

	return nil
}

// Delete issues an unconditional DeleteItem by key
func (r *NoteRepository) Delete(ctx context.Context, noteID string) error {
	if noteID == "" {
		return repositories.NewRepositoryError("validate", "note", noteID, repositories.ErrInvalidID)
	}

	_, err := r.client.DeleteItem(ctx, &dynamodb.DeleteItemInput{
		TableName: aws.String(r.table),
		Key: map[string]types.AttributeValue{
			"noteId": &types.AttributeValueMemberS{Value: noteID},
		},
	})
	if err != nil {
		r.logFailure("delete", noteID, err)
		return repositories.NewRepositoryError("delete", "note", noteID, err)
	}

	r.logger.WithFields(logrus.Fields{
		"operation": "delete",
		"table":     r.table,
		"note_id":   noteID,
	}).Debug("Store operation executed")

	return nil
}

// Close implements repositories.NoteRepository. The SDK client holds no
// resources that need releasing.
func (r *NoteRepository) Close() error {
	return nil
}

func (r *NoteRepository) logFailure(op, noteID string, err error) {
	fields := logrus.Fields{
		"operation": op,
		"table":     r.table,
		"error":     err.Error(),
	}
	if noteID != "" {
		fields["note_id"] = noteID
	}
	r.logger.WithFields(fields).Error("Store operation failed")
}
