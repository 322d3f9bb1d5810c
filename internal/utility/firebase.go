package utility

import (
	"context"
	"fmt"
	"os"
	"path/filepath"

	firebase "firebase.google.com/go/v4"
	"firebase.google.com/go/v4/messaging"
	"google.golang.org/api/option"
)

var (
	firebaseApp       *firebase.App
	firebaseMessaging *messaging.Client
)

// findAppDir tìm thư mục gốc của ứng dụng (thư mục chứa config/env)
func findAppDir() (string, error) {
	currentDir, err := os.Getwd()
	if err != nil {
		return "", err
	}

	for {
		envDir := filepath.Join(currentDir, "config", "env")
		if _, err := os.Stat(envDir); err == nil {
			return currentDir, nil
		}

		// Đi lên thư mục cha
		parentDir := filepath.Dir(currentDir)
		if parentDir == currentDir {
			return "", fmt.Errorf("không tìm thấy thư mục gốc của ứng dụng")
		}
		currentDir = parentDir
	}
}

// InitFirebase khởi tạo Firebase Admin SDK và Cloud Messaging client.
// credentialsPath có thể là đường dẫn tuyệt đối hoặc relative so với thư mục gốc của ứng dụng.
func InitFirebase(projectID, credentialsPath string) error {
	if !filepath.IsAbs(credentialsPath) {
		// Đường dẫn relative, resolve từ thư mục gốc (nơi có config/)
		appDir, err := findAppDir()
		if err != nil {
			return fmt.Errorf("không tìm thấy thư mục gốc của ứng dụng: %v", err)
		}
		credentialsPath = filepath.Join(appDir, credentialsPath)
	}

	// Kiểm tra file credentials tồn tại
	if _, err := os.Stat(credentialsPath); os.IsNotExist(err) {
		return fmt.Errorf("firebase credentials file not found: %s", credentialsPath)
	}

	// Tạo Firebase app
	opt := option.WithCredentialsFile(credentialsPath)
	app, err := firebase.NewApp(context.Background(), &firebase.Config{
		ProjectID: projectID,
	}, opt)
	if err != nil {
		return fmt.Errorf("failed to initialize Firebase app: %v", err)
	}

	firebaseApp = app

	// Tạo Messaging client
	messagingClient, err := app.Messaging(context.Background())
	if err != nil {
		return fmt.Errorf("failed to get Firebase Messaging client: %v", err)
	}

	firebaseMessaging = messagingClient
	return nil
}

// GetFirebaseMessaging trả về Firebase Cloud Messaging client, nil nếu chưa khởi tạo
func GetFirebaseMessaging() *messaging.Client {
	return firebaseMessaging
}
