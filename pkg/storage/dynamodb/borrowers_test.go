package dynamodb

import (
	"context"
	"errors"
	"testing"

	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
	"github.com/chris/library-lending/pkg/models"
	"github.com/chris/library-lending/pkg/storage"
	"github.com/chris/library-lending/pkg/storage/dynamodb/mocks"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

var testTables = Tables{
	Books:                "books",
	Loans:                "loans",
	Refs:                 "refs",
	Ledger:               "ledger",
	Borrowers:            "borrowers",
	Settings:             "settings",
	WebsocketConnections: "connections",
}

func TestCreateBorrower(t *testing.T) {
	t.Run("Success", func(t *testing.T) {
		mockClient := new(mocks.DynamoDBAPI)
		mockClient.On("PutItem", mock.Anything, mock.MatchedBy(func(in *dynamodb.PutItemInput) bool {
			return *in.TableName == "borrowers" && *in.ConditionExpression == "attribute_not_exists(id)"
		})).Return(&dynamodb.PutItemOutput{}, nil)

		store := New(mockClient, testTables)
		created, err := store.CreateBorrower(context.Background(), &models.Borrower{Id: "reader-1", Name: "Ada"})

		assert.NoError(t, err)
		assert.Equal(t, "reader-1", created.Id)
		assert.False(t, created.CreatedAt.IsZero())
		mockClient.AssertExpectations(t)
	})

	t.Run("Generates ID", func(t *testing.T) {
		mockClient := new(mocks.DynamoDBAPI)
		mockClient.On("PutItem", mock.Anything, mock.Anything).Return(&dynamodb.PutItemOutput{}, nil)

		store := New(mockClient, testTables)
		created, err := store.CreateBorrower(context.Background(), &models.Borrower{Name: "Grace"})

		assert.NoError(t, err)
		assert.NotEmpty(t, created.Id)
		mockClient.AssertExpectations(t)
	})

	t.Run("Conflict", func(t *testing.T) {
		mockClient := new(mocks.DynamoDBAPI)
		mockClient.On("PutItem", mock.Anything, mock.Anything).Return(nil, &types.ConditionalCheckFailedException{})

		store := New(mockClient, testTables)
		_, err := store.CreateBorrower(context.Background(), &models.Borrower{Id: "reader-1"})

		assert.ErrorIs(t, err, storage.ErrAlreadyExists)
		mockClient.AssertExpectations(t)
	})

	t.Run("Storage Error", func(t *testing.T) {
		mockClient := new(mocks.DynamoDBAPI)
		mockClient.On("PutItem", mock.Anything, mock.Anything).Return(nil, errors.New("some other storage error"))

		store := New(mockClient, testTables)
		_, err := store.CreateBorrower(context.Background(), &models.Borrower{Id: "reader-1"})

		assert.Error(t, err)
		assert.Contains(t, err.Error(), "failed to create borrower in DynamoDB")
		mockClient.AssertExpectations(t)
	})
}

func TestDeleteBorrower(t *testing.T) {
	t.Run("Success", func(t *testing.T) {
		mockClient := new(mocks.DynamoDBAPI)
		mockClient.On("DeleteItem", mock.Anything, mock.Anything).Return(&dynamodb.DeleteItemOutput{}, nil)

		store := New(mockClient, testTables)
		err := store.DeleteBorrower(context.Background(), "reader-1")

		assert.NoError(t, err)
		mockClient.AssertExpectations(t)
	})

	t.Run("Not Found", func(t *testing.T) {
		mockClient := new(mocks.DynamoDBAPI)
		mockClient.On("DeleteItem", mock.Anything, mock.Anything).Return(nil, &types.ConditionalCheckFailedException{})

		store := New(mockClient, testTables)
		err := store.DeleteBorrower(context.Background(), "reader-1")

		assert.ErrorIs(t, err, storage.ErrNotFound)
		mockClient.AssertExpectations(t)
	})
}

func TestGetBorrower(t *testing.T) {
	borrower := &models.Borrower{Id: "reader-1", Name: "Ada", Email: "ada@example.com"}

	t.Run("Success", func(t *testing.T) {
		mockClient := new(mocks.DynamoDBAPI)
		borrowerAV, _ := attributevalue.MarshalMap(borrower)
		mockClient.On("GetItem", mock.Anything, mock.Anything).Return(&dynamodb.GetItemOutput{Item: borrowerAV}, nil)

		store := New(mockClient, testTables)
		retrieved, err := store.GetBorrower(context.Background(), "reader-1")

		assert.NoError(t, err)
		assert.Equal(t, borrower.Name, retrieved.Name)
		assert.Equal(t, borrower.Email, retrieved.Email)
		mockClient.AssertExpectations(t)
	})

	t.Run("Not Found", func(t *testing.T) {
		mockClient := new(mocks.DynamoDBAPI)
		mockClient.On("GetItem", mock.Anything, mock.Anything).Return(&dynamodb.GetItemOutput{Item: nil}, nil)

		store := New(mockClient, testTables)
		_, err := store.GetBorrower(context.Background(), "reader-1")

		assert.ErrorIs(t, err, storage.ErrNotFound)
		mockClient.AssertExpectations(t)
	})
}

func TestListBorrowers(t *testing.T) {
	t.Run("Success", func(t *testing.T) {
		mockClient := new(mocks.DynamoDBAPI)
		a, _ := attributevalue.MarshalMap(models.Borrower{Id: "a", Name: "Ada"})
		b, _ := attributevalue.MarshalMap(models.Borrower{Id: "b", Name: "Grace"})
		mockClient.On("Scan", mock.Anything, mock.Anything).Return(&dynamodb.ScanOutput{Items: []map[string]types.AttributeValue{a, b}}, nil)

		store := New(mockClient, testTables)
		borrowers, err := store.ListBorrowers(context.Background())

		assert.NoError(t, err)
		assert.Len(t, borrowers, 2)
		mockClient.AssertExpectations(t)
	})

	t.Run("Scan Fails", func(t *testing.T) {
		mockClient := new(mocks.DynamoDBAPI)
		mockClient.On("Scan", mock.Anything, mock.Anything).Return(nil, errors.New("scan failed"))

		store := New(mockClient, testTables)
		_, err := store.ListBorrowers(context.Background())

		assert.Error(t, err)
		assert.Contains(t, err.Error(), "failed to scan borrowers table")
		mockClient.AssertExpectations(t)
	})
}
