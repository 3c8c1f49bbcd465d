package mocks

//go:generate go run github.com/vektra/mockery/v2@v2.53.5 --name Repository --dir ../domain/sport --output domain/sport --outpkg sportmock --filename repository_mock.go
//go:generate go run github.com/vektra/mockery/v2@v2.53.5 --name Repository --dir ../domain/registration --output domain/registration --outpkg registrationmock --filename repository_mock.go
