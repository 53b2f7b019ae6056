package mocks

//go:generate go run github.com/vektra/mockery/v2@v2.53.5 --name Notifier --dir ../domain/notification --output domain/notification --outpkg notificationmock --filename notifier_mock.go
//go:generate go run github.com/vektra/mockery/v2@v2.53.5 --name Transactor --dir ../domain/store --output domain/store --outpkg storemock --filename transactor_mock.go
