package service

import (
	"math/rand"
	"sync"

	"github.com/avc-dev/referral-service/internal/model"
)

const (
	CodeLength   = 6
	AllowedChars = "ABCDEFGHIJKLMNOPQRSTUVWXYZ0123456789"
)

// CodeGenerator генерирует случайные реферальные коды
type CodeGenerator struct {
	mu     sync.Mutex
	random *rand.Rand
}

// NewCodeGenerator создает новый генератор кодов
func NewCodeGenerator() *CodeGenerator {
	return &CodeGenerator{
		random: rand.New(rand.NewSource(rand.Int63())),
	}
}

// GenerateCode генерирует случайный код из заглавных букв и цифр
func (g *CodeGenerator) GenerateCode() model.Code {
	return model.Code(g.generateRandomString())
}

// generateRandomString генерирует случайную строку длины CodeLength.
// *rand.Rand не потокобезопасен, поэтому доступ под мьютексом.
func (g *CodeGenerator) generateRandomString() string {
	result := make([]byte, CodeLength)

	g.mu.Lock()
	for i := range result {
		result[i] = AllowedChars[g.random.Intn(len(AllowedChars))]
	}
	g.mu.Unlock()

	return string(result)
}
