package dynamodb

import (
	"context"
	"errors"

	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
	"github.com/chris/library-lending/pkg/storage"
)

// DynamoDBAPI is the subset of the DynamoDB client the store uses.
type DynamoDBAPI interface {
	GetItem(ctx context.Context, params *dynamodb.GetItemInput, optFns ...func(*dynamodb.Options)) (*dynamodb.GetItemOutput, error)
	PutItem(ctx context.Context, params *dynamodb.PutItemInput, optFns ...func(*dynamodb.Options)) (*dynamodb.PutItemOutput, error)
	UpdateItem(ctx context.Context, params *dynamodb.UpdateItemInput, optFns ...func(*dynamodb.Options)) (*dynamodb.UpdateItemOutput, error)
	DeleteItem(ctx context.Context, params *dynamodb.DeleteItemInput, optFns ...func(*dynamodb.Options)) (*dynamodb.DeleteItemOutput, error)
	Query(ctx context.Context, params *dynamodb.QueryInput, optFns ...func(*dynamodb.Options)) (*dynamodb.QueryOutput, error)
	Scan(ctx context.Context, params *dynamodb.ScanInput, optFns ...func(*dynamodb.Options)) (*dynamodb.ScanOutput, error)
	TransactWriteItems(ctx context.Context, params *dynamodb.TransactWriteItemsInput, optFns ...func(*dynamodb.Options)) (*dynamodb.TransactWriteItemsOutput, error)
}

// Tables holds the table names the store writes to.
type Tables struct {
	Books                string
	Loans                string
	Refs                 string
	Ledger               string
	Borrowers            string
	Settings             string
	WebsocketConnections string
}

// Store implements the Storage interface using AWS DynamoDB.
type Store struct {
	Client                        DynamoDBAPI
	BooksTableName                string
	LoansTableName                string
	RefsTableName                 string
	LedgerTableName               string
	BorrowersTableName            string
	SettingsTableName             string
	WebsocketConnectionsTableName string
}

// New creates a new Store.
func New(client DynamoDBAPI, tables Tables) *Store {
	return &Store{
		Client:                        client,
		BooksTableName:                tables.Books,
		LoansTableName:                tables.Loans,
		RefsTableName:                 tables.Refs,
		LedgerTableName:               tables.Ledger,
		BorrowersTableName:            tables.Borrowers,
		SettingsTableName:             tables.Settings,
		WebsocketConnectionsTableName: tables.WebsocketConnections,
	}
}

// Make sure we conform to the interface
var _ storage.Storage = (*Store)(nil)

const conditionalCheckFailed = "ConditionalCheckFailed"

// cancellation returns the reason a TransactWriteItems call was canceled at each item index.
// ok is false when err is not a transaction cancellation.
func cancellation(err error) (reasons []types.CancellationReason, ok bool) {
	var tce *types.TransactionCanceledException
	if !errors.As(err, &tce) {
		return nil, false
	}
	return tce.CancellationReasons, true
}

// failedCondition reports whether item i of a canceled transaction failed its condition check.
func failedCondition(reasons []types.CancellationReason, i int) bool {
	return i < len(reasons) && reasons[i].Code != nil && *reasons[i].Code == conditionalCheckFailed
}
