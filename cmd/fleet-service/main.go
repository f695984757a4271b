package main

import (
	"flag"
	"fmt"

	fleetpb "github.com/FleetRentDrive/FleetRentDrive/internal/api/proto/fleet"
	"github.com/FleetRentDrive/FleetRentDrive/internal/common/config"
	"github.com/FleetRentDrive/FleetRentDrive/internal/common/db"
	"github.com/FleetRentDrive/FleetRentDrive/internal/common/logger"
	"github.com/FleetRentDrive/FleetRentDrive/internal/common/server"
	"github.com/FleetRentDrive/FleetRentDrive/internal/common/tracing"
	"github.com/FleetRentDrive/FleetRentDrive/internal/fleet"
	"google.golang.org/grpc"
)

var (
	configPath = flag.String("config", "configs/fleet-service.json", "配置文件路径")
)

func main() {
	flag.Parse()

	// 加载配置
	cfg, err := config.LoadConfig(*configPath)
	if err != nil {
		panic(fmt.Sprintf("failed to load config: %v", err))
	}

	// 初始化日志
	log, err := logger.NewLogger(cfg.Log.Level, cfg.Log.Format, cfg.Log.Output, cfg.Log.Path)
	if err != nil {
		panic(fmt.Sprintf("failed to init logger: %v", err))
	}

	// 初始化链路追踪
	tracer, closer, err := tracing.InitTracer(
		cfg.Server.Name,
		cfg.Jaeger.Endpoint,
		cfg.Jaeger.Sampler,
	)
	if err != nil {
		log.Warnf("failed to init tracer: %v", err)
	} else {
		defer closer.Close()
	}
	_ = tracer

	// 初始化数据库
	gormDB, err := db.NewMySQL(
		cfg.Database.Host,
		cfg.Database.Port,
		cfg.Database.User,
		cfg.Database.Password,
		cfg.Database.Database,
		cfg.Database.MaxIdle,
		cfg.Database.MaxOpen,
	)
	if err != nil {
		log.Fatalf("failed to init mysql: %v", err)
	}
	if err := gormDB.AutoMigrate(&fleet.Vehicle{}, &fleet.Category{}); err != nil {
		log.Fatalf("failed to migrate mysql schema: %v", err)
	}

	// Redis 缓存可租车辆列表
	rdb := fleet.NewRedis(
		fmt.Sprintf("%s:%d", cfg.Redis.Host, cfg.Redis.Port),
		cfg.Redis.Password,
		cfg.Redis.DB,
	)
	repo := fleet.NewCachedRepo(fleet.NewRepo(gormDB), rdb)

	// 启动统一的 gRPC 服务模板
	if err := server.RunGRPCServer(cfg, log, func(s *grpc.Server) error {
		fleetpb.RegisterFleetServiceServer(s, fleet.NewGRPCServer(repo))
		return nil
	}); err != nil {
		log.Fatalf("fleet-service exited with error: %v", err)
	}
}
