package s3

import (
	"context"
	"errors"
	"strconv"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
)

// DDBClient is the subset of the DynamoDB API the catalog uses.
type DDBClient interface {
	PutItem(ctx context.Context, params *dynamodb.PutItemInput, optFns ...func(*dynamodb.Options)) (*dynamodb.PutItemOutput, error)
	GetItem(ctx context.Context, params *dynamodb.GetItemInput, optFns ...func(*dynamodb.Options)) (*dynamodb.GetItemOutput, error)
	DeleteItem(ctx context.Context, params *dynamodb.DeleteItemInput, optFns ...func(*dynamodb.Options)) (*dynamodb.DeleteItemOutput, error)
}

// ErrEntryNotFound is returned by GetEntry for unknown archives.
var ErrEntryNotFound = errors.New("catalog entry not found")

// Entry describes one stored archive.
type Entry struct {
	Name   string
	Width  uint
	Height uint
	Bytes  int64
}

// Catalog records archive metadata in a DynamoDB table so stored archives
// can be inventoried without fetching them.
//
// Table schema: partition key "name" (string). Create with:
//
//	aws dynamodb create-table \
//	  --table-name barch-archives \
//	  --attribute-definitions AttributeName=name,AttributeType=S \
//	  --key-schema AttributeName=name,KeyType=HASH \
//	  --billing-mode PAY_PER_REQUEST
type Catalog struct {
	client    DDBClient
	tableName string
}

// NewCatalog creates a catalog over the given table.
func NewCatalog(client DDBClient, tableName string) *Catalog {
	return &Catalog{
		client:    client,
		tableName: tableName,
	}
}

// PutEntry records the dimensions and stored byte size of an archive,
// replacing any previous entry of the same name.
func (c *Catalog) PutEntry(ctx context.Context, name string, width, height uint, bytes int64) error {
	_, err := c.client.PutItem(ctx, &dynamodb.PutItemInput{
		TableName: aws.String(c.tableName),
		Item: map[string]types.AttributeValue{
			"name":   &types.AttributeValueMemberS{Value: name},
			"width":  &types.AttributeValueMemberN{Value: strconv.FormatUint(uint64(width), 10)},
			"height": &types.AttributeValueMemberN{Value: strconv.FormatUint(uint64(height), 10)},
			"bytes":  &types.AttributeValueMemberN{Value: strconv.FormatInt(bytes, 10)},
		},
	})
	return err
}

// GetEntry fetches the entry for name.
func (c *Catalog) GetEntry(ctx context.Context, name string) (Entry, error) {
	resp, err := c.client.GetItem(ctx, &dynamodb.GetItemInput{
		TableName: aws.String(c.tableName),
		Key: map[string]types.AttributeValue{
			"name": &types.AttributeValueMemberS{Value: name},
		},
		ConsistentRead: aws.Bool(true),
	})
	if err != nil {
		return Entry{}, err
	}
	if len(resp.Item) == 0 {
		return Entry{}, ErrEntryNotFound
	}

	entry := Entry{Name: name}
	if entry.Width, err = numberAttr(resp.Item, "width"); err != nil {
		return Entry{}, err
	}
	if entry.Height, err = numberAttr(resp.Item, "height"); err != nil {
		return Entry{}, err
	}
	bytes, err := numberAttr(resp.Item, "bytes")
	if err != nil {
		return Entry{}, err
	}
	entry.Bytes = int64(bytes)
	return entry, nil
}

// DeleteEntry removes the entry for name. Missing entries are not an error.
func (c *Catalog) DeleteEntry(ctx context.Context, name string) error {
	_, err := c.client.DeleteItem(ctx, &dynamodb.DeleteItemInput{
		TableName: aws.String(c.tableName),
		Key: map[string]types.AttributeValue{
			"name": &types.AttributeValueMemberS{Value: name},
		},
	})
	return err
}

func numberAttr(item map[string]types.AttributeValue, key string) (uint, error) {
	attr, ok := item[key].(*types.AttributeValueMemberN)
	if !ok {
		return 0, errors.New("catalog entry missing attribute " + key)
	}
	value, err := strconv.ParseUint(attr.Value, 10, 64)
	if err != nil {
		return 0, err
	}
	return uint(value), nil
}
