package main

import (
	"context"
	"encoding/json"
	"flag"
	"fmt"
	"net/http"
	"time"

	"github.com/FleetRentDrive/FleetRentDrive/internal/common/config"
	"github.com/FleetRentDrive/FleetRentDrive/internal/common/discovery"
	"github.com/FleetRentDrive/FleetRentDrive/internal/common/logger"
	"github.com/FleetRentDrive/FleetRentDrive/internal/common/middleware"
	"github.com/hashicorp/consul/api"
	"google.golang.org/grpc"
	"google.golang.org/grpc/credentials/insecure"
	"google.golang.org/grpc/health/grpc_health_v1"
)

// HTTP 入口骨架：
// - /healthz: 网关自身健康检查
// - /readyz:  经 Consul 发现后端服务并做 gRPC health 探测（每个后端一只熔断器）
// 业务流量的 HTTP->gRPC 映射（grpc-gateway）后续由 Makefile 的 protoc 生成接入。

var (
	configPath = flag.String("config", "configs/api-gateway.json", "配置文件路径")
)

var backendServices = []string{"rental-service", "fleet-service", "user-service"}

type backendChecker struct {
	consul   *api.Client
	breakers map[string]*middleware.CircuitBreaker
}

func newBackendChecker(consul *api.Client) *backendChecker {
	breakers := make(map[string]*middleware.CircuitBreaker, len(backendServices))
	for _, name := range backendServices {
		breakers[name] = middleware.NewCircuitBreaker(name, 5, 30*time.Second)
	}
	return &backendChecker{consul: consul, breakers: breakers}
}

// check 探测单个后端：Consul 找一个健康实例，然后打 gRPC health。
func (c *backendChecker) check(ctx context.Context, name string) error {
	return c.breakers[name].Call(ctx, func() error {
		if c.consul == nil {
			return fmt.Errorf("consul unavailable")
		}
		entries, _, err := c.consul.Health().Service(name, "", true, nil)
		if err != nil {
			return fmt.Errorf("consul lookup: %w", err)
		}
		if len(entries) == 0 {
			return fmt.Errorf("no healthy instance")
		}
		addr := fmt.Sprintf("%s:%d", entries[0].Service.Address, entries[0].Service.Port)

		conn, err := grpc.Dial(addr, grpc.WithTransportCredentials(insecure.NewCredentials()))
		if err != nil {
			return fmt.Errorf("dial %s: %w", addr, err)
		}
		defer conn.Close()

		checkCtx, cancel := context.WithTimeout(ctx, 3*time.Second)
		defer cancel()
		resp, err := grpc_health_v1.NewHealthClient(conn).Check(checkCtx, &grpc_health_v1.HealthCheckRequest{})
		if err != nil {
			return fmt.Errorf("health check %s: %w", addr, err)
		}
		if resp.GetStatus() != grpc_health_v1.HealthCheckResponse_SERVING {
			return fmt.Errorf("backend %s not serving", addr)
		}
		return nil
	})
}

func rateLimited(limiter middleware.RateLimiter, next http.Handler) http.Handler {
	if limiter == nil {
		return next
	}
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if !limiter.Allow(r.Context()) {
			http.Error(w, "rate limit exceeded", http.StatusTooManyRequests)
			return
		}
		next.ServeHTTP(w, r)
	})
}

func main() {
	flag.Parse()

	cfg, err := config.LoadConfig(*configPath)
	if err != nil {
		panic(fmt.Sprintf("failed to load config: %v", err))
	}
	log, err := logger.NewLogger(cfg.Log.Level, cfg.Log.Format, cfg.Log.Output, cfg.Log.Path)
	if err != nil {
		panic(fmt.Sprintf("failed to init logger: %v", err))
	}

	consulClient, err := discovery.NewConsulClient(cfg.Consul.Host, cfg.Consul.Port)
	if err != nil {
		log.Warnf("failed to connect to Consul: %v", err)
		consulClient = nil
	}
	checker := newBackendChecker(consulClient)

	mux := http.NewServeMux()
	mux.HandleFunc("/healthz", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "text/plain; charset=utf-8")
		_, _ = w.Write([]byte("ok"))
	})
	mux.HandleFunc("/readyz", func(w http.ResponseWriter, r *http.Request) {
		result := make(map[string]string, len(backendServices))
		allOK := true
		for _, name := range backendServices {
			if err := checker.check(r.Context(), name); err != nil {
				result[name] = err.Error()
				allOK = false
			} else {
				result[name] = "ok"
			}
		}
		w.Header().Set("Content-Type", "application/json; charset=utf-8")
		if !allOK {
			w.WriteHeader(http.StatusServiceUnavailable)
		}
		_ = json.NewEncoder(w).Encode(result)
	})

	var limiter middleware.RateLimiter
	if cfg.RateLimit.Enabled {
		burst := cfg.RateLimit.Burst
		if burst <= 0 {
			burst = cfg.RateLimit.RatePerSecond
		}
		limiter = middleware.NewTokenBucket(burst, cfg.RateLimit.RatePerSecond)
	}

	addr := fmt.Sprintf("%s:%d", cfg.Server.Host, cfg.Server.HTTPPort)
	srv := &http.Server{
		Addr:              addr,
		Handler:           rateLimited(limiter, mux),
		ReadHeaderTimeout: 5 * time.Second,
	}

	log.Infof("api-gateway listening on %s", addr)
	if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		log.Fatalf("api-gateway exited with error: %v", err)
	}
}
