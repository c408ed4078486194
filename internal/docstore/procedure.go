// procedure.go
//
// Photo sharing and gold economy data service
// Copyright (c) 2026 Alex Grant <info@localnerve.com> (https://www.localnerve.com), LocalNerve LLC
//
// This file is part of goldphotos.
// goldphotos is free software: you can redistribute it and/or modify it
// under the terms of the GNU Affero General Public License as published by the Free Software
// Foundation, either version 3 of the License, or (at your option) any later version.
// goldphotos is distributed in the hope that it will be useful, but WITHOUT ANY WARRANTY;
// without even the implied warranty of MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.
// See the GNU Affero General Public License for more details.
// You should have received a copy of the GNU Affero General Public License along with goldphotos.
// If not, see <https://www.gnu.org/licenses/>.
// Additional terms under GNU AGPL version 3 section 7:
// a) The reasonable legal notice of original copyright and author attribution must be preserved
//    by including the string: "Copyright (c) 2026 Alex Grant <info@localnerve.com> (https://www.localnerve.com), LocalNerve LLC"
//    in this material, copies, or source code of derived works.

package docstore

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"path"
	"sort"
	"sync"

	"github.com/localnerve/goldphotos/internal/models"
	"github.com/sirupsen/logrus"
	"gopkg.in/yaml.v2"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// Parameter types accepted in procedure definitions
const (
	ParamString = "string"
	ParamInt    = "int"
	ParamBool   = "bool"
)

// Parameter is one positional procedure parameter
type Parameter struct {
	Name string `yaml:"name" json:"name"`
	Type string `yaml:"type" json:"type"`
}

// ProcedureDefinition describes a provisioned procedure
type ProcedureDefinition struct {
	ID          string      `yaml:"id"`
	Description string      `yaml:"description"`
	Parameters  []Parameter `yaml:"parameters"`
	Source      string      `yaml:"-"`
}

// Procedure is the handler of a procedure. It runs inside one transaction;
// returning an error rolls back every write made through tx.
type Procedure func(ctx context.Context, tx Driver, args Arguments) (interface{}, error)

// Arguments are validated procedure arguments keyed by parameter name
type Arguments map[string]interface{}

// String returns a string argument
func (a Arguments) String(name string) string {
	v, _ := a[name].(string)
	return v
}

// Int returns an int argument
func (a Arguments) Int(name string) int64 {
	v, _ := a[name].(int64)
	return v
}

// Bool returns a bool argument
func (a Arguments) Bool(name string) bool {
	v, _ := a[name].(bool)
	return v
}

type registry struct {
	mu       sync.RWMutex
	handlers map[string]Procedure
}

func newRegistry() *registry {
	return &registry{handlers: make(map[string]Procedure)}
}

// ParseDefinition parses a YAML procedure definition
func ParseDefinition(data []byte) (ProcedureDefinition, error) {
	var def ProcedureDefinition
	if err := yaml.Unmarshal(data, &def); err != nil {
		return def, fmt.Errorf("invalid procedure definition: %w", err)
	}
	if def.ID == "" {
		return def, fmt.Errorf("invalid procedure definition: id is required")
	}
	for _, p := range def.Parameters {
		if p.Name == "" {
			return def, fmt.Errorf("procedure %s: parameter name is required", def.ID)
		}
		switch p.Type {
		case ParamString, ParamInt, ParamBool:
		default:
			return def, fmt.Errorf("procedure %s: unsupported parameter type %q", def.ID, p.Type)
		}
	}
	def.Source = string(data)
	return def, nil
}

// LoadDefinitions reads every *.yaml procedure definition in fsys
func LoadDefinitions(fsys fs.FS) ([]ProcedureDefinition, error) {
	files, err := fs.Glob(fsys, "*.yaml")
	if err != nil {
		return nil, err
	}
	sort.Strings(files)

	defs := make([]ProcedureDefinition, 0, len(files))
	for _, file := range files {
		data, err := fs.ReadFile(fsys, file)
		if err != nil {
			return nil, fmt.Errorf("read %s: %w", path.Base(file), err)
		}
		def, err := ParseDefinition(data)
		if err != nil {
			return nil, fmt.Errorf("%s: %w", path.Base(file), err)
		}
		defs = append(defs, def)
	}
	return defs, nil
}

// RegisterProcedure binds a handler to a procedure id
func (s *Store) RegisterProcedure(procedureID string, handler Procedure) {
	s.procedures.mu.Lock()
	defer s.procedures.mu.Unlock()
	s.procedures.handlers[procedureID] = handler
}

// UpsertProcedure provisions or replaces a procedure definition in the collection
func (s *Store) UpsertProcedure(ctx context.Context, def ProcedureDefinition) error {
	params, err := json.Marshal(def.Parameters)
	if err != nil {
		return err
	}
	row := models.StoredProcedure{
		DatabaseID:   s.databaseID,
		CollectionID: s.collectionID,
		ProcedureID:  def.ID,
		Description:  def.Description,
		Parameters:   params,
		Source:       def.Source,
	}
	err = s.db.WithContext(ctx).
		Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "database_id"}, {Name: "collection_id"}, {Name: "procedure_id"}},
			DoUpdates: clause.AssignmentColumns([]string{"description", "parameters", "source", "updated_at"}),
		}).
		Create(&row).Error
	if err != nil {
		return err
	}
	s.log.WithField("procedure", def.ID).Info("procedure provisioned")
	return nil
}

func (s *Store) definition(ctx context.Context, procedureID string) (ProcedureDefinition, error) {
	var row models.StoredProcedure
	err := s.db.WithContext(ctx).
		Where("database_id = ? AND collection_id = ? AND procedure_id = ?", s.databaseID, s.collectionID, procedureID).
		First(&row).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ProcedureDefinition{}, fmt.Errorf("procedure %s: %w", procedureID, ErrNotFound)
		}
		return ProcedureDefinition{}, err
	}

	def := ProcedureDefinition{ID: row.ProcedureID, Description: row.Description, Source: row.Source}
	if len(row.Parameters) > 0 {
		if err := json.Unmarshal(row.Parameters, &def.Parameters); err != nil {
			return ProcedureDefinition{}, err
		}
	}
	return def, nil
}

// bind checks positional arguments against the definition
func bind(def ProcedureDefinition, args []interface{}) (Arguments, error) {
	if len(args) != len(def.Parameters) {
		return nil, fmt.Errorf("%w: %s expects %d arguments, got %d", ErrInvalidArguments, def.ID, len(def.Parameters), len(args))
	}

	bound := make(Arguments, len(args))
	for i, p := range def.Parameters {
		switch p.Type {
		case ParamString:
			v, ok := args[i].(string)
			if !ok {
				return nil, fmt.Errorf("%w: %s.%s must be a string", ErrInvalidArguments, def.ID, p.Name)
			}
			bound[p.Name] = v
		case ParamInt:
			switch v := args[i].(type) {
			case int:
				bound[p.Name] = int64(v)
			case int32:
				bound[p.Name] = int64(v)
			case int64:
				bound[p.Name] = v
			default:
				return nil, fmt.Errorf("%w: %s.%s must be an integer", ErrInvalidArguments, def.ID, p.Name)
			}
		case ParamBool:
			v, ok := args[i].(bool)
			if !ok {
				return nil, fmt.Errorf("%w: %s.%s must be a bool", ErrInvalidArguments, def.ID, p.Name)
			}
			bound[p.Name] = v
		}
	}
	return bound, nil
}

// ExecuteProcedure runs a provisioned procedure atomically and returns its JSON result
func (s *Store) ExecuteProcedure(ctx context.Context, procedureID string, args ...interface{}) (json.RawMessage, error) {
	def, err := s.definition(ctx, procedureID)
	if err != nil {
		return nil, err
	}

	s.procedures.mu.RLock()
	handler, ok := s.procedures.handlers[procedureID]
	s.procedures.mu.RUnlock()
	if !ok {
		return nil, fmt.Errorf("procedure %s: %w", procedureID, ErrProcedureNotRegistered)
	}

	bound, err := bind(def, args)
	if err != nil {
		return nil, err
	}

	var result json.RawMessage
	err = s.transaction(ctx, func(tx *Store) error {
		out, err := handler(ctx, tx, bound)
		if err != nil {
			return err
		}
		result, err = json.Marshal(out)
		return err
	})
	if err != nil {
		s.log.WithFields(logrus.Fields{"procedure": procedureID}).WithError(err).Warn("procedure rolled back")
		return nil, err
	}
	return result, nil
}
