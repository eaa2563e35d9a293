// Package service contains the business logic.
//
// It sits between the callers (the operator CLI today) and the repository
// layer. Services log; repositories do not.
package service
