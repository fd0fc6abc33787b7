package storage

import "time"

const (
	RoleJudge       = "judge"
	RoleCoordinator = "coordinator"
)

// ConsoleSession is one logged-in console user: the opaque console token the
// dashboard holds, the upstream bearer tokens it maps to, and the minimal
// profile the views need. Cleared on logout; EventID is set for judges only.
type ConsoleSession struct {
	Token        string    `dynamodbav:"PK"`
	Role         string    `dynamodbav:"Role"`
	AccessToken  string    `dynamodbav:"AccessToken"`
	RefreshToken string    `dynamodbav:"RefreshToken"`
	UserID       string    `dynamodbav:"UserID"`
	Name         string    `dynamodbav:"Name"`
	Email        string    `dynamodbav:"Email"`
	EventID      string    `dynamodbav:"EventID"`
	CreatedAt    time.Time `dynamodbav:"CreatedAt"`
}
