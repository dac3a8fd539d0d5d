// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/abhay963/Notes-Saver/internal/logger"
	"github.com/abhay963/Notes-Saver/internal/store"
	"github.com/abhay963/Notes-Saver/internal/utils"
	"github.com/abhay963/Notes-Saver/internal/validators"
	"github.com/abhay963/Notes-Saver/models"
)

// TimestampLayout is the format of CreatedAt and UpdatedAt for new values.
const TimestampLayout = time.RFC1123Z

const (
	opLoad   = "load"
	opCreate = "create"
	opUpdate = "update"
	opDelete = "delete"
	opReset  = "reset"
)

type clientNoteService struct {
	mu    sync.Mutex
	notes []models.Note

	repo      store.NoteRepository
	validator validators.Validator
	ids       utils.IDGenerator
	now       func() time.Time

	logger *logger.Logger
}

// NewClientNoteService loads the persisted collection through
// storages.NoteRepository and returns the note store built on top of it.
// A missing or malformed persisted value starts an empty store; only a
// backend read failure is returned as an error.
func NewClientNoteService(
	ctx context.Context,
	storages *store.ClientStorages,
	validator validators.Validator,
	ids utils.IDGenerator,
	logger *logger.Logger,
) (ClientNoteService, error) {
	notes, err := storages.NoteRepository.Load(ctx)
	if err != nil {
		return nil, &PersistenceError{Op: opLoad, Err: err}
	}

	logger.Debug().Int("notes", len(notes)).Msg("note store initialised")

	return &clientNoteService{
		notes:     notes,
		repo:      storages.NoteRepository,
		validator: validator,
		ids:       ids,
		now:       time.Now,
		logger:    logger,
	}, nil
}

func (s *clientNoteService) Create(ctx context.Context, note models.Note) error {
	_, err := s.create(ctx, note)
	return err
}

func (s *clientNoteService) create(ctx context.Context, note models.Note) (models.Note, error) {
	if err := s.validate(ctx, note); err != nil {
		return models.Note{}, err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if s.hasDuplicateBody(note) {
		return models.Note{}, ErrDuplicateNote
	}
	if s.indexOf(note.ID) >= 0 {
		return models.Note{}, ErrDuplicateID
	}

	next := make([]models.Note, 0, len(s.notes)+1)
	next = append(next, note)
	next = append(next, s.notes...)

	if err := s.commit(ctx, opCreate, next); err != nil {
		return models.Note{}, err
	}

	logger.FromContextOr(ctx, s.logger).Debug().
		Str("func", "clientNoteService.Create").
		Str("id", note.ID).
		Msg("note created")

	return note, nil
}

func (s *clientNoteService) Update(ctx context.Context, note models.Note) error {
	_, err := s.update(ctx, note)
	return err
}

func (s *clientNoteService) update(ctx context.Context, note models.Note) (models.Note, error) {
	if err := s.validate(ctx, note); err != nil {
		return models.Note{}, err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	idx := s.indexOf(note.ID)
	if idx < 0 {
		return models.Note{}, ErrNoteNotFound
	}
	if s.hasDuplicateBody(note) {
		return models.Note{}, ErrDuplicateNote
	}

	updated := note
	if created := s.notes[idx].CreatedAt; created != "" {
		updated.CreatedAt = created
	}
	updated.UpdatedAt = s.now().Format(TimestampLayout)

	next := make([]models.Note, 0, len(s.notes))
	next = append(next, updated)
	next = append(next, s.notes[:idx]...)
	next = append(next, s.notes[idx+1:]...)

	if err := s.commit(ctx, opUpdate, next); err != nil {
		return models.Note{}, err
	}

	logger.FromContextOr(ctx, s.logger).Debug().
		Str("func", "clientNoteService.Update").
		Str("id", note.ID).
		Int("previous_position", idx).
		Msg("note updated")

	return updated, nil
}

func (s *clientNoteService) Delete(ctx context.Context, id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	idx := s.indexOf(id)
	if idx < 0 {
		logger.FromContextOr(ctx, s.logger).Debug().
			Str("func", "clientNoteService.Delete").
			Str("id", id).
			Msg("note already absent")
		return nil
	}

	next := make([]models.Note, 0, len(s.notes)-1)
	next = append(next, s.notes[:idx]...)
	next = append(next, s.notes[idx+1:]...)

	return s.commit(ctx, opDelete, next)
}

func (s *clientNoteService) Reset(ctx context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if err := s.repo.Clear(ctx); err != nil {
		return &PersistenceError{Op: opReset, Err: err}
	}
	s.notes = []models.Note{}

	logger.FromContextOr(ctx, s.logger).Info().
		Str("func", "clientNoteService.Reset").
		Msg("all notes removed")

	return nil
}

func (s *clientNoteService) List(_ context.Context) []models.Note {
	s.mu.Lock()
	defer s.mu.Unlock()

	out := make([]models.Note, len(s.notes))
	copy(out, s.notes)
	return out
}

func (s *clientNoteService) Get(_ context.Context, id string) (models.Note, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	idx := s.indexOf(id)
	if idx < 0 {
		return models.Note{}, ErrNoteNotFound
	}
	return s.notes[idx], nil
}

func (s *clientNoteService) Compose(title, content, editID string) models.Note {
	id := editID
	if id == "" {
		id = s.ids.Generate()
	}

	return models.Note{
		ID:        id,
		Title:     title,
		Content:   content,
		CreatedAt: s.now().Format(TimestampLayout),
	}
}

func (s *clientNoteService) Submit(ctx context.Context, editID, title, content string) (models.Note, error) {
	note := s.Compose(title, content, editID)
	if editID != "" {
		return s.update(ctx, note)
	}
	return s.create(ctx, note)
}

func (s *clientNoteService) validate(ctx context.Context, note models.Note) error {
	if err := s.validator.Validate(ctx, note); err != nil {
		return fmt.Errorf("%w: %w", ErrValidation, err)
	}
	return nil
}

// commit persists next and only then makes it the current collection.
// s.mu must be held.
func (s *clientNoteService) commit(ctx context.Context, op string, next []models.Note) error {
	if err := s.repo.Save(ctx, next); err != nil {
		return &PersistenceError{Op: op, Err: err}
	}
	s.notes = next
	return nil
}

// indexOf returns the position of id or -1. s.mu must be held.
func (s *clientNoteService) indexOf(id string) int {
	for i := range s.notes {
		if s.notes[i].ID == id {
			return i
		}
	}
	return -1
}

// hasDuplicateBody reports whether a note other than note itself has the
// same title and content. s.mu must be held.
func (s *clientNoteService) hasDuplicateBody(note models.Note) bool {
	for _, existing := range s.notes {
		if existing.ID != note.ID && existing.SameBody(note) {
			return true
		}
	}
	return false
}
