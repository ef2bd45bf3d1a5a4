package i18n

import (
	"bytes"
	"embed"
	"encoding/json"
	"fmt"
	"io/fs"
	"path"
	"sort"
	"strings"
	"sync"
	"text/template"
)

//go:embed locales/*.json
var embeddedLocales embed.FS

// Service gerencia traduções e internacionalização
type Service struct {
	mu              sync.RWMutex
	translations    map[string]map[string]string // [language][key]message
	templates       map[string]*template.Template
	defaultLanguage string
}

// NewEmbeddedService carrega os locales embarcados no binário
func NewEmbeddedService(defaultLang string) (*Service, error) {
	locales, err := fs.Sub(embeddedLocales, "locales")
	if err != nil {
		return nil, fmt.Errorf("failed to open embedded locales: %w", err)
	}
	return NewService(locales, defaultLang)
}

// NewService carrega todos os arquivos *.json da raiz de fsys.
// O nome do arquivo sem extensão é o código do idioma (en, es, pt-BR).
func NewService(fsys fs.FS, defaultLang string) (*Service, error) {
	s := &Service{
		translations:    make(map[string]map[string]string),
		templates:       make(map[string]*template.Template),
		defaultLanguage: defaultLang,
	}

	files, err := fs.Glob(fsys, "*.json")
	if err != nil {
		return nil, fmt.Errorf("failed to find locale files: %w", err)
	}
	if len(files) == 0 {
		return nil, fmt.Errorf("no locale files found")
	}

	for _, file := range files {
		lang := strings.TrimSuffix(path.Base(file), ".json")

		data, err := fs.ReadFile(fsys, file)
		if err != nil {
			return nil, fmt.Errorf("failed to read locale file %s: %w", file, err)
		}

		var translations map[string]string
		if err := json.Unmarshal(data, &translations); err != nil {
			return nil, fmt.Errorf("failed to parse locale file %s: %w", file, err)
		}

		s.translations[lang] = translations
	}

	if _, ok := s.translations[defaultLang]; !ok {
		return nil, fmt.Errorf("default language %s not found in locale files", defaultLang)
	}

	return s, nil
}

// T traduz uma chave para o idioma especificado, caindo para o idioma padrão
// e depois para a própria chave. Parâmetros usam templates Go ({{.MaxMB}}).
func (s *Service) T(lang, key string, params ...map[string]interface{}) string {
	s.mu.RLock()
	message := s.getTranslation(lang, key)
	if message == "" {
		lang = s.defaultLanguage
		message = s.getTranslation(lang, key)
	}
	s.mu.RUnlock()

	if message == "" {
		return key
	}
	if len(params) == 0 || !strings.Contains(message, "{{") {
		return message
	}

	tmpl, err := s.template(lang, key, message)
	if err != nil {
		return message
	}

	var buf bytes.Buffer
	if err := tmpl.Execute(&buf, params[0]); err != nil {
		return message
	}
	return buf.String()
}

// template compila cada mensagem parametrizada uma única vez
func (s *Service) template(lang, key, message string) (*template.Template, error) {
	cacheKey := lang + "\x00" + key

	s.mu.RLock()
	tmpl, ok := s.templates[cacheKey]
	s.mu.RUnlock()
	if ok {
		return tmpl, nil
	}

	tmpl, err := template.New(key).Option("missingkey=zero").Parse(message)
	if err != nil {
		return nil, err
	}

	s.mu.Lock()
	s.templates[cacheKey] = tmpl
	s.mu.Unlock()
	return tmpl, nil
}

func (s *Service) getTranslation(lang, key string) string {
	if langMap, ok := s.translations[lang]; ok {
		return langMap[key]
	}
	return ""
}

// GetDefaultLanguage retorna o idioma padrão configurado
func (s *Service) GetDefaultLanguage() string {
	return s.defaultLanguage
}

// GetSupportedLanguages retorna os idiomas carregados, ordenados
func (s *Service) GetSupportedLanguages() []string {
	s.mu.RLock()
	defer s.mu.RUnlock()

	langs := make([]string, 0, len(s.translations))
	for lang := range s.translations {
		langs = append(langs, lang)
	}
	sort.Strings(langs)
	return langs
}

// IsLanguageSupported verifica se um idioma é suportado
func (s *Service) IsLanguageSupported(lang string) bool {
	s.mu.RLock()
	defer s.mu.RUnlock()

	_, ok := s.translations[lang]
	return ok
}

// Keys retorna as chaves definidas para um idioma
func (s *Service) Keys(lang string) []string {
	s.mu.RLock()
	defer s.mu.RUnlock()

	keys := make([]string, 0, len(s.translations[lang]))
	for k := range s.translations[lang] {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}
