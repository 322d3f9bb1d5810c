package global

import (
	"famhub/config"
	"famhub/internal/registry"

	"firebase.google.com/go/v4/messaging"
	"github.com/go-playground/validator/v10"
	"go.mongodb.org/mongo-driver/mongo"
)

// MongoDB_CollectionName chứa tên các collection trong MongoDB
type MongoDB_CollectionName struct {
	Users       string // Tên collection cho hồ sơ người dùng (địa chỉ nhận thông báo)
	Chats       string // Tên collection cho các đoạn chat của nhóm
	Groups      string // Tên collection cho nhóm (gia đình / hội)
	TriggerLogs string // Tên collection cho nhật ký trigger đã xử lý
}

// Các biến toàn cục
var Validate *validator.Validate               // Biến để xác thực dữ liệu
var MongoDB_Session *mongo.Client              // Phiên kết nối tới MongoDB
var MongoDB_ServerConfig *config.Configuration // Cấu hình của server
var MongoDB_ColNames MongoDB_CollectionName = *new(MongoDB_CollectionName)
var FirebaseMessaging *messaging.Client // Client gửi FCM, có thể nil nếu chưa cấu hình Firebase

// Các Registry
var RegistryCollections = registry.NewRegistry[*mongo.Collection]() // Registry chứa các collections
var RegistryDatabase = registry.NewRegistry[*mongo.Database]()      // Registry chứa các databases
