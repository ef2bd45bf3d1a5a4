package middleware

import (
	"fmt"
	"strings"

	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
)

const maxFolderPathLength = 255

// RegisterValidators adiciona as tags folderpath e storagekey ao validator do Gin
func RegisterValidators() error {
	v, ok := binding.Validator.Engine().(*validator.Validate)
	if !ok {
		return fmt.Errorf("unexpected validator engine %T", binding.Validator.Engine())
	}

	if err := v.RegisterValidation("folderpath", validateFolderPath); err != nil {
		return fmt.Errorf("register folderpath: %w", err)
	}
	if err := v.RegisterValidation("storagekey", validateStorageKey); err != nil {
		return fmt.Errorf("register storagekey: %w", err)
	}
	return nil
}

// validateFolderPath recusa segmentos de navegação e caracteres de controle
func validateFolderPath(fl validator.FieldLevel) bool {
	value := fl.Field().String()
	if len(value) > maxFolderPathLength {
		return false
	}
	for _, segment := range strings.Split(value, "/") {
		if strings.TrimSpace(segment) == ".." {
			return false
		}
	}
	return !strings.ContainsAny(value, "\\\x00\r\n")
}

// validateStorageKey confere o formato {clientId}/{uuid}{ext}; o prefixo
// do cliente é conferido pelo serviço
func validateStorageKey(fl validator.FieldLevel) bool {
	parts := strings.Split(fl.Field().String(), "/")
	if len(parts) != 2 || parts[0] == "" || parts[1] == "" {
		return false
	}
	id := parts[1]
	if dot := strings.IndexByte(id, '.'); dot >= 0 {
		id = id[:dot]
	}
	return uuid.Validate(id) == nil
}
