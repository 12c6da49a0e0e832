package dynamodb

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"time"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
	"github.com/chris/library-lending/pkg/inventory"
	"github.com/chris/library-lending/pkg/models"
	"github.com/chris/library-lending/pkg/storage"
	"github.com/google/uuid"
)

// GetBook retrieves a book from DynamoDB by its ID.
func (s *Store) GetBook(ctx context.Context, bookID string) (*models.Book, error) {
	key, err := attributevalue.MarshalMap(map[string]string{"id": bookID})
	if err != nil {
		return nil, fmt.Errorf("failed to marshal book ID: %w", err)
	}

	result, err := s.Client.GetItem(ctx, &dynamodb.GetItemInput{
		TableName:      aws.String(s.BooksTableName),
		Key:            key,
		ConsistentRead: aws.Bool(true),
	})
	if err != nil {
		return nil, fmt.Errorf("failed to get book from DynamoDB: %w", err)
	}

	if result.Item == nil {
		return nil, fmt.Errorf("book with ID %s: %w", bookID, storage.ErrNotFound)
	}

	var book models.Book
	if err := attributevalue.UnmarshalMap(result.Item, &book); err != nil {
		return nil, fmt.Errorf("failed to unmarshal book: %w", err)
	}

	return &book, nil
}

// CreateBook creates a new book record with every copy available.
func (s *Store) CreateBook(ctx context.Context, book *models.Book) (*models.Book, error) {
	if book.TotalCopies < 1 {
		return nil, fmt.Errorf("%w: total copies must be at least one", inventory.ErrInvalidQuantity)
	}
	if book.Id == "" {
		book.Id = uuid.New().String()
	}

	now := time.Now()
	book.AvailableCopies = book.TotalCopies
	book.Version = 1
	book.CreatedAt = now
	book.UpdatedAt = now

	bookAV, err := attributevalue.MarshalMap(book)
	if err != nil {
		return nil, fmt.Errorf("failed to marshal book: %w", err)
	}

	_, err = s.Client.PutItem(ctx, &dynamodb.PutItemInput{
		TableName:           aws.String(s.BooksTableName),
		Item:                bookAV,
		ConditionExpression: aws.String("attribute_not_exists(id)"),
	})
	if err != nil {
		var condCheckFailed *types.ConditionalCheckFailedException
		if errors.As(err, &condCheckFailed) {
			return nil, fmt.Errorf("book with ID %s: %w", book.Id, storage.ErrAlreadyExists)
		}
		return nil, fmt.Errorf("failed to create book in DynamoDB: %w", err)
	}

	return book, nil
}

// ListBooks retrieves all books from DynamoDB.
func (s *Store) ListBooks(ctx context.Context) ([]models.Book, error) {
	var books []models.Book
	input := &dynamodb.ScanInput{TableName: aws.String(s.BooksTableName)}

	for {
		result, err := s.Client.Scan(ctx, input)
		if err != nil {
			return nil, fmt.Errorf("failed to scan books table: %w", err)
		}

		var page []models.Book
		if err := attributevalue.UnmarshalListOfMaps(result.Items, &page); err != nil {
			return nil, fmt.Errorf("failed to unmarshal books: %w", err)
		}
		books = append(books, page...)

		if len(result.LastEvaluatedKey) == 0 {
			return books, nil
		}
		input.ExclusiveStartKey = result.LastEvaluatedKey
	}
}

// SetTotalCopies changes the number of copies owned. The write is conditional on the version read,
// so a concurrent reservation makes it fail with ErrBookModified instead of corrupting the counts.
func (s *Store) SetTotalCopies(ctx context.Context, bookID string, total int64) (*models.Book, error) {
	book, err := s.GetBook(ctx, bookID)
	if err != nil {
		return nil, err
	}

	updated, err := inventory.SetTotal(*book, total)
	if err != nil {
		return nil, err
	}
	updated.UpdatedAt = time.Now()

	nowAV, err := attributevalue.Marshal(updated.UpdatedAt)
	if err != nil {
		return nil, fmt.Errorf("failed to marshal timestamp: %w", err)
	}

	_, err = s.Client.UpdateItem(ctx, &dynamodb.UpdateItemInput{
		TableName: aws.String(s.BooksTableName),
		Key: map[string]types.AttributeValue{
			"id": &types.AttributeValueMemberS{Value: bookID},
		},
		UpdateExpression:    aws.String("SET total_copies = :total, available_copies = :available, version = :next, updated_at = :now"),
		ConditionExpression: aws.String("version = :version"),
		ExpressionAttributeValues: map[string]types.AttributeValue{
			":total":     number(updated.TotalCopies),
			":available": number(updated.AvailableCopies),
			":next":      number(updated.Version),
			":version":   number(book.Version),
			":now":       nowAV,
		},
	})
	if err != nil {
		var condCheckFailed *types.ConditionalCheckFailedException
		if errors.As(err, &condCheckFailed) {
			return nil, fmt.Errorf("book with ID %s: %w", bookID, storage.ErrBookModified)
		}
		return nil, fmt.Errorf("failed to update book copies: %w", err)
	}

	return &updated, nil
}

func number(n int64) *types.AttributeValueMemberN {
	return &types.AttributeValueMemberN{Value: strconv.FormatInt(n, 10)}
}
