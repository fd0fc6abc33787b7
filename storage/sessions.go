package storage

import (
	"context"
	"time"

	"github.com/EltonDagodog/VoteRoyale/logging"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
)

// SessionStorage is the injected session-context store: get/set/clear, no
// global singleton.
type SessionStorage interface {
	Get(ctx context.Context, token string) (*ConsoleSession, error)
	Put(ctx context.Context, session *ConsoleSession) error
	Delete(ctx context.Context, token string) error
}

// DynamoSessionStorage backs sessions with DynamoDB. Used in the Lambda
// deployment, where instances share nothing and hold no disk.
type DynamoSessionStorage struct {
	Client    *dynamodb.Client
	TableName string
}

func (s *DynamoSessionStorage) Get(ctx context.Context, token string) (*ConsoleSession, error) {
	key, err := attributevalue.MarshalMap(map[string]string{"PK": token})
	if err != nil {
		logging.Log.Errorf("SESSION: failed to marshal key: %v", err)
		return nil, err
	}

	out, err := s.Client.GetItem(ctx, &dynamodb.GetItemInput{
		TableName: &s.TableName,
		Key:       key,
	})
	if err != nil {
		logging.Log.Errorf("SESSION: GET storage failed: %v", err)
		return nil, err
	}
	if out.Item == nil {
		return nil, ErrSessionNotFound
	}

	var session *ConsoleSession
	if err := attributevalue.UnmarshalMap(out.Item, &session); err != nil {
		logging.Log.Errorf("SESSION: failed to unmarshal result: %v", err)
		return nil, err
	}
	return session, nil
}

func (s *DynamoSessionStorage) Put(ctx context.Context, session *ConsoleSession) error {
	if session.CreatedAt.IsZero() {
		session.CreatedAt = time.Now().UTC()
	}
	item, err := attributevalue.MarshalMap(session)
	if err != nil {
		logging.Log.Errorf("SESSION: failed to marshal session: %v", err)
		return err
	}

	_, err = s.Client.PutItem(ctx, &dynamodb.PutItemInput{
		TableName: &s.TableName,
		Item:      item,
	})
	if err != nil {
		logging.Log.Errorf("SESSION: PUT storage failed: %v", err)
		return err
	}
	return nil
}

func (s *DynamoSessionStorage) Delete(ctx context.Context, token string) error {
	key, err := attributevalue.MarshalMap(map[string]string{"PK": token})
	if err != nil {
		logging.Log.Errorf("SESSION: failed to marshal key: %v", err)
		return err
	}

	_, err = s.Client.DeleteItem(ctx, &dynamodb.DeleteItemInput{
		TableName: &s.TableName,
		Key:       key,
	})
	if err != nil {
		logging.Log.Errorf("SESSION: DEL storage item failed: %v", err)
		return err
	}
	return nil
}
