package library

import "context"

//go:generate mockery --name UseCase
type UseCase interface {
	Save(ctx context.Context, input SaveInput) (ShaderOutput, error)
	Get(ctx context.Context, input GetInput) (ShaderOutput, error)
	List(ctx context.Context, input ListInput) ([]ShaderOutput, error)
}
