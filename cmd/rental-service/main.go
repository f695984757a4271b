package main

import (
	"flag"
	"fmt"

	rentalpb "github.com/FleetRentDrive/FleetRentDrive/internal/api/proto/rental"
	"github.com/FleetRentDrive/FleetRentDrive/internal/common/config"
	"github.com/FleetRentDrive/FleetRentDrive/internal/common/db"
	"github.com/FleetRentDrive/FleetRentDrive/internal/common/logger"
	"github.com/FleetRentDrive/FleetRentDrive/internal/common/server"
	"github.com/FleetRentDrive/FleetRentDrive/internal/common/tracing"
	"github.com/FleetRentDrive/FleetRentDrive/internal/fleet"
	"github.com/FleetRentDrive/FleetRentDrive/internal/rental"
	"google.golang.org/grpc"
)

var (
	configPath = flag.String("config", "configs/rental-service.json", "配置文件路径")
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
	// 租约服务需要车辆表（行锁发生在 vehicles 上）
	if err := gormDB.AutoMigrate(&fleet.Vehicle{}, &rental.Rental{}); err != nil {
		log.Fatalf("failed to migrate mysql schema: %v", err)
	}

	// 租约生命周期事件写 Kafka（best-effort，投递失败只记日志）
	var pub rental.EventPublisher
	if len(cfg.Kafka.Brokers) > 0 {
		kp := rental.NewKafkaPublisher(cfg.Kafka.Brokers, cfg.Server.Name)
		defer kp.Close()
		pub = kp
	}

	svc := rental.NewService(rental.NewRepo(gormDB), pub)

	// 启动统一的 gRPC 服务模板
	if err := server.RunGRPCServer(cfg, log, func(s *grpc.Server) error {
		rentalpb.RegisterRentalServiceServer(s, rental.NewGRPCServer(svc))
		return nil
	}); err != nil {
		log.Fatalf("rental-service exited with error: %v", err)
	}
}
