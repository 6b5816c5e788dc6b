package service

import (
	"github.com/vparshin/go-note-keeper/internal/logger"
	"github.com/vparshin/go-note-keeper/internal/store"
)

type Services struct {
	IdentityService IdentityService
	NoteService     NoteService
}

func NewServices(storages *store.Storages, logger *logger.Logger) *Services {
	return &Services{
		IdentityService: NewIdentityService(storages.UserRepository, logger),
		NoteService:     NewNoteService(storages.NoteRepository, logger),
	}
}
