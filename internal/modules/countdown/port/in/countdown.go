package in

import (
	"context"

	"trainer/internal/modules/countdown/dto"
)

type Usecase interface {
	Start()
	Stop()
	Reset()
	Toggle()
	Interrupt()
	Zero()
	Tick(handle uint64) bool
	SetDuration(raw string) error
	Snapshot() dto.SnapshotOutput
	Format(raw string) (string, error)
	Run(ctx context.Context) (dto.RunOutput, error)
}
