package dynamodb

import (
	"context"
	"fmt"
	"time"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
	"github.com/chris/library-lending/pkg/inventory"
	"github.com/chris/library-lending/pkg/models"
	"github.com/google/uuid"
)

// reserveItem decrements available copies, failing its condition when fewer than quantity remain.
// On failure the old item is returned so the caller can tell a missing book from an empty shelf.
func (s *Store) reserveItem(bookID string, quantity int64, nowAV types.AttributeValue) types.TransactWriteItem {
	return types.TransactWriteItem{
		Update: &types.Update{
			TableName: aws.String(s.BooksTableName),
			Key: map[string]types.AttributeValue{
				"id": &types.AttributeValueMemberS{Value: bookID},
			},
			UpdateExpression:    aws.String("SET available_copies = available_copies - :qty, version = version + :inc, updated_at = :now"),
			ConditionExpression: aws.String("attribute_exists(id) AND available_copies >= :qty"),
			ExpressionAttributeValues: map[string]types.AttributeValue{
				":qty": number(quantity),
				":inc": number(1),
				":now": nowAV,
			},
			ReturnValuesOnConditionCheckFailure: types.ReturnValuesOnConditionCheckFailureAllOld,
		},
	}
}

// releaseItem credits up to quantity copies back to the book without exceeding its total.
// DynamoDB conditions cannot do arithmetic, so the clamp is computed from a fresh read and the
// write is conditioned on the counts it was computed from. It returns nil when nothing can be credited.
func (s *Store) releaseItem(ctx context.Context, bookID string, quantity int64, nowAV types.AttributeValue) (*types.TransactWriteItem, int64, error) {
	book, err := s.GetBook(ctx, bookID)
	if err != nil {
		return nil, 0, fmt.Errorf("failed to get book for release: %w", err)
	}

	credited := inventory.Releasable(*book, quantity)
	if credited == 0 {
		return nil, 0, nil
	}

	return &types.TransactWriteItem{
		Update: &types.Update{
			TableName: aws.String(s.BooksTableName),
			Key: map[string]types.AttributeValue{
				"id": &types.AttributeValueMemberS{Value: bookID},
			},
			UpdateExpression:    aws.String("SET available_copies = available_copies + :qty, version = version + :inc, updated_at = :now"),
			ConditionExpression: aws.String("total_copies = :total AND available_copies <= :max"),
			ExpressionAttributeValues: map[string]types.AttributeValue{
				":qty":   number(credited),
				":inc":   number(1),
				":total": number(book.TotalCopies),
				":max":   number(book.TotalCopies - credited),
				":now":   nowAV,
			},
		},
	}, credited, nil
}

// ledgerItem records a reserve or release movement in the ledger table.
func (s *Store) ledgerItem(loan *models.Loan, movement models.Movement, quantity int64, description string, now time.Time) (types.TransactWriteItem, error) {
	entry := models.LedgerEntry{
		EntryID:     uuid.New().String(),
		LoanID:      loan.Id,
		RefNbr:      loan.RefNbr,
		BookID:      loan.BookId,
		Movement:    movement,
		Quantity:    quantity,
		Description: description,
		Timestamp:   now,
		GSI1PK:      ledgerPartition,
	}
	entryAV, err := attributevalue.MarshalMap(entry)
	if err != nil {
		return types.TransactWriteItem{}, fmt.Errorf("failed to marshal ledger entry: %w", err)
	}

	return types.TransactWriteItem{
		Put: &types.Put{
			TableName:           aws.String(s.LedgerTableName),
			Item:                entryAV,
			ConditionExpression: aws.String("attribute_not_exists(entry_id)"),
		},
	}, nil
}
