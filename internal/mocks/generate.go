package mocks

//go:generate mockery --name DataSource --srcpkg github.com/aevon-lab/retail-insights/internal/core/storage --output ./storage --outpkg storagemocks --with-expecter
