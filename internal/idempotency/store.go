package idempotency

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/go-redis/redis/v8"
)

// HeaderKey é o header que o cliente envia para tornar o POST repetível.
const HeaderKey = "Idempotency-Key"

const (
	keyReservationCreate = "idem:reservation:create:%s"

	inFlightMarker = "in-flight"
	inFlightTTL    = 30 * time.Second

	// SETNX falha e o GET volta vazio quando a chave expira no meio;
	// depois disso a chave é tratada como ocupada.
	beginAttempts = 2
)

// ErrInFlight: outra requisição com a mesma chave ainda não terminou.
var ErrInFlight = errors.New("idempotent request in flight")

// Record é a resposta guardada para ser repetida. Fingerprint identifica
// o corpo da requisição que a produziu.
type Record struct {
	Status      int             `json:"status"`
	Body        json.RawMessage `json:"body"`
	Fingerprint string          `json:"fingerprint,omitempty"`
}

// Fingerprint é o sha256 do JSON canônico da requisição já decodificada,
// então espaços e ordem das chaves no corpo original não contam.
func Fingerprint(v any) (string, error) {
	b, err := json.Marshal(v)
	if err != nil {
		return "", fmt.Errorf("fingerprint request: %w", err)
	}
	sum := sha256.Sum256(b)
	return hex.EncodeToString(sum[:]), nil
}

// Matches diz se o Record foi gravado para o mesmo corpo. Registros sem
// fingerprint são aceitos.
func (r Record) Matches(fingerprint string) bool {
	return r.Fingerprint == "" || r.Fingerprint == fingerprint
}

type Store interface {
	// Begin devolve (nil, nil) quando a chave foi reservada para esta
	// requisição, ou o Record já gravado por uma requisição anterior.
	Begin(ctx context.Context, key string) (*Record, error)
	Complete(ctx context.Context, key string, rec Record) error
	Abort(ctx context.Context, key string) error
}

type RedisStore struct {
	rdb redis.Cmdable
	ttl time.Duration
}

func NewRedisStore(rdb redis.Cmdable, ttl time.Duration) *RedisStore {
	return &RedisStore{rdb: rdb, ttl: ttl}
}

var _ Store = (*RedisStore)(nil)

func NewClient(addr string) *redis.Client {
	return redis.NewClient(&redis.Options{
		Addr:        addr,
		DialTimeout: 2 * time.Second,
		ReadTimeout: 2 * time.Second,
	})
}

func redisKey(key string) string {
	return fmt.Sprintf(keyReservationCreate, key)
}

func (s *RedisStore) Begin(ctx context.Context, key string) (*Record, error) {
	k := redisKey(key)

	for attempt := 0; attempt < beginAttempts; attempt++ {
		claimed, err := s.rdb.SetNX(ctx, k, inFlightMarker, inFlightTTL).Result()
		if err != nil {
			return nil, err
		}
		if claimed {
			return nil, nil
		}

		raw, err := s.rdb.Get(ctx, k).Result()
		if errors.Is(err, redis.Nil) {
			// expirou entre o SETNX e o GET
			continue
		}
		if err != nil {
			return nil, err
		}
		return decode(raw)
	}
	return nil, ErrInFlight
}

func (s *RedisStore) Complete(ctx context.Context, key string, rec Record) error {
	b, err := json.Marshal(rec)
	if err != nil {
		return err
	}
	return s.rdb.Set(ctx, redisKey(key), b, s.ttl).Err()
}

// Abort libera a chave para que o cliente possa tentar de novo.
func (s *RedisStore) Abort(ctx context.Context, key string) error {
	return s.rdb.Del(ctx, redisKey(key)).Err()
}

func decode(raw string) (*Record, error) {
	if raw == inFlightMarker {
		return nil, ErrInFlight
	}
	var rec Record
	if err := json.Unmarshal([]byte(raw), &rec); err != nil {
		return nil, fmt.Errorf("decode idempotency record: %w", err)
	}
	return &rec, nil
}
