package main

import (
	"context"

	"famhub/config"
	chatmodels "famhub/internal/api/chat/models"
	groupmodels "famhub/internal/api/group/models"
	triggermodels "famhub/internal/api/trigger/models"
	usermodels "famhub/internal/api/user/models"
	"famhub/internal/database"
	"famhub/internal/global"
	"famhub/internal/utility"

	"github.com/sirupsen/logrus"
)

// Hàm khởi tạo các biến toàn cục
func InitGlobal() {
	initColNames()         // Khởi tạo tên các collection trong database
	initValidator()        // Khởi tạo validator
	initConfig()           // Khởi tạo cấu hình server
	initDatabase_MongoDB() // Khởi tạo kết nối database
	initFirebase()         // Khởi tạo Firebase
}

// Hàm khởi tạo tên các collection trong database
func initColNames() {
	global.MongoDB_ColNames.Users = "users"
	global.MongoDB_ColNames.Chats = "chats"
	global.MongoDB_ColNames.Groups = "groups"
	global.MongoDB_ColNames.TriggerLogs = "trigger_logs"

	logrus.Info("Initialized collection names")
}

// Hàm khởi tạo validator (dùng global.InitValidator để đăng ký custom validators: no_xss, fcm_token)
func initValidator() {
	global.InitValidator()
	logrus.Info("Initialized validator")
}

// Hàm khởi tạo cấu hình server
func initConfig() {
	global.MongoDB_ServerConfig = config.NewConfig()
	if global.MongoDB_ServerConfig == nil {
		logrus.Fatalf("Failed to initialize config: config is nil")
	}
	logrus.Info("Initialized server config")
}

// Hàm khởi tạo kết nối database
func initDatabase_MongoDB() {
	var err error
	global.MongoDB_Session, err = database.GetInstance(global.MongoDB_ServerConfig)
	if err != nil {
		logrus.Fatalf("Failed to get database instance: %v", err)
	}
	logrus.Info("Connected to MongoDB")

	// Khởi tạo các db và collections nếu chưa có
	database.EnsureDatabaseAndCollections(global.MongoDB_Session)
	logrus.Info("Ensured database and collections")

	// Khởi tạo các index cho các collection theo tag `index` trên model
	dbName := global.MongoDB_ServerConfig.MongoDB_DBName
	db := global.MongoDB_Session.Database(dbName)
	database.CreateIndexes(context.TODO(), db.Collection(global.MongoDB_ColNames.Users), usermodels.UserProfile{})
	database.CreateIndexes(context.TODO(), db.Collection(global.MongoDB_ColNames.Chats), chatmodels.Chat{})
	database.CreateIndexes(context.TODO(), db.Collection(global.MongoDB_ColNames.Groups), groupmodels.Group{})
	database.CreateIndexes(context.TODO(), db.Collection(global.MongoDB_ColNames.TriggerLogs), triggermodels.TriggerLog{})
}

// initFirebase khởi tạo Firebase Admin SDK và Cloud Messaging client.
// Firebase là optional: thiếu cấu hình thì server vẫn chạy, pipeline dùng DisabledSender.
func initFirebase() {
	cfg := global.MongoDB_ServerConfig
	if cfg.FirebaseProjectID == "" || cfg.FirebaseCredentialsPath == "" {
		logrus.Warn("Firebase chưa được cấu hình, bỏ qua khởi tạo push gateway")
		return
	}

	if err := utility.InitFirebase(cfg.FirebaseProjectID, cfg.FirebaseCredentialsPath); err != nil {
		logrus.WithError(err).Warn("Không khởi tạo được Firebase, server tiếp tục chạy không có push gateway")
		return
	}

	global.FirebaseMessaging = utility.GetFirebaseMessaging()
	logrus.Info("Initialized Firebase Cloud Messaging")
}
