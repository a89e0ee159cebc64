// Package health checks that the published ports of manifest services answer.
package health

import (
	"context"
	"fmt"
	"net"
	"time"

	"github.com/Pr0ject-X/px-valet/internal/logger"
	"github.com/Pr0ject-X/px-valet/internal/manifest"
	"github.com/Pr0ject-X/px-valet/internal/model"
	"github.com/redis/go-redis/v9"
)

// DefaultTimeout bounds each probe.
const DefaultTimeout = 2 * time.Second

// Probe methods.
const (
	MethodRedis = "redis"
	MethodTCP   = "tcp"
)

// Result is the outcome of probing one published port.
type Result struct {
	Service string
	Method  string
	Port    model.PortMapping
	Err     error
}

func (r Result) OK() bool {
	return r.Err == nil
}

// DialFunc opens a network connection.
type DialFunc func(ctx context.Context, network, addr string) (net.Conn, error)

// Checker probes services one port at a time.
type Checker struct {
	timeout time.Duration
	dial    DialFunc
	log     logger.Logger
}

// NewChecker returns a checker bounding every probe by timeout.
func NewChecker(timeout time.Duration, log logger.Logger) *Checker {
	if timeout <= 0 {
		timeout = DefaultTimeout
	}
	if log == nil {
		log = logger.Nop()
	}
	d := &net.Dialer{Timeout: timeout}
	return &Checker{timeout: timeout, dial: d.DialContext, log: log}
}

// Services lists the manifest services in manifest order.
func Services(m *manifest.Manifest) []model.Service {
	var out []model.Service
	for _, key := range m.ServiceKeys() {
		def, _ := m.Service(key)
		out = append(out, model.Service{
			Name:  key,
			Image: def.Image,
			Type:  model.CategorizeService(key, def.Image),
			Ports: model.ParsePorts(def.Ports),
		})
	}
	return out
}

// Check probes every published TCP port of services. Redis-compatible caches
// must answer PING; anything else must accept a connection.
func (c *Checker) Check(ctx context.Context, services []model.Service) []Result {
	var results []Result
	for _, svc := range services {
		for _, port := range svc.PublishedPorts() {
			r := Result{Service: svc.Name, Method: MethodTCP, Port: port}
			if svc.Type == model.ServiceTypeCache && model.SpeaksRedis(svc.Image) {
				r.Method = MethodRedis
				r.Err = c.pingRedis(ctx, port.Address())
			} else {
				r.Err = c.dialTCP(ctx, port.Address())
			}
			if r.Err != nil {
				c.log.Debug("probe failed",
					logger.String("service", svc.Name),
					logger.String("addr", port.Address()),
					logger.Error(r.Err),
				)
			}
			results = append(results, r)
		}
	}
	return results
}

func (c *Checker) dialTCP(ctx context.Context, addr string) error {
	ctx, cancel := context.WithTimeout(ctx, c.timeout)
	defer cancel()

	conn, err := c.dial(ctx, "tcp", addr)
	if err != nil {
		return fmt.Errorf("dial %s: %w", addr, err)
	}
	return conn.Close()
}

func (c *Checker) pingRedis(ctx context.Context, addr string) error {
	client := redis.NewClient(&redis.Options{
		Addr:            addr,
		Protocol:        2,
		DisableIdentity: true,
		MaxRetries:      -1,
		DialTimeout:     c.timeout,
		ReadTimeout:     c.timeout,
		WriteTimeout:    c.timeout,
		Dialer: func(ctx context.Context, network, addr string) (net.Conn, error) {
			return c.dial(ctx, network, addr)
		},
	})
	defer client.Close()

	ctx, cancel := context.WithTimeout(ctx, c.timeout)
	defer cancel()

	if err := client.Ping(ctx).Err(); err != nil {
		return fmt.Errorf("redis ping %s: %w", addr, err)
	}
	return nil
}
