package app

import (
	"fmt"

	linkHTTP "github.com/atluixx/lynkt/internal/link/http"
	linkRepository "github.com/atluixx/lynkt/internal/link/repository"
	linkUseCase "github.com/atluixx/lynkt/internal/link/usecase"
)

// LinkRepository returns the link repository for the configured driver.
func (c *Container) LinkRepository() (linkUseCase.LinkRepository, error) {
	err := c.lazy(&c.linkRepoInit, "linkRepo", func() error {
		db, err := c.DB()
		if err != nil {
			return fmt.Errorf("failed to get database for link repository: %w", err)
		}
		switch c.config.DBDriver {
		case "mysql":
			c.linkRepo = linkRepository.NewMySQLLinkRepository(db)
		case "postgres":
			c.linkRepo = linkRepository.NewPostgreSQLLinkRepository(db)
		default:
			return fmt.Errorf("unsupported database driver: %s", c.config.DBDriver)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return c.linkRepo, nil
}

// GroupRepository returns the collection repository for the configured driver.
func (c *Container) GroupRepository() (linkUseCase.GroupRepository, error) {
	err := c.lazy(&c.groupRepoInit, "groupRepo", func() error {
		db, err := c.DB()
		if err != nil {
			return fmt.Errorf("failed to get database for group repository: %w", err)
		}
		switch c.config.DBDriver {
		case "mysql":
			c.groupRepo = linkRepository.NewMySQLGroupRepository(db)
		case "postgres":
			c.groupRepo = linkRepository.NewPostgreSQLGroupRepository(db)
		default:
			return fmt.Errorf("unsupported database driver: %s", c.config.DBDriver)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return c.groupRepo, nil
}

// LinkUseCase returns the link use case.
func (c *Container) LinkUseCase() (linkUseCase.LinkUseCase, error) {
	err := c.lazy(&c.linkUseCaseInit, "linkUseCase", func() (err error) {
		c.linkUseCase, err = c.initLinkUseCase()
		return err
	})
	if err != nil {
		return nil, err
	}
	return c.linkUseCase, nil
}

// GroupUseCase returns the collection use case.
func (c *Container) GroupUseCase() (linkUseCase.GroupUseCase, error) {
	err := c.lazy(&c.groupUseCaseInit, "groupUseCase", func() (err error) {
		c.groupUseCase, err = c.initGroupUseCase()
		return err
	})
	if err != nil {
		return nil, err
	}
	return c.groupUseCase, nil
}

// LinkHandler returns the HTTP handler for /users/:slug/links.
func (c *Container) LinkHandler() (*linkHTTP.LinkHandler, error) {
	err := c.lazy(&c.linkHandlerInit, "linkHandler", func() error {
		useCase, err := c.LinkUseCase()
		if err != nil {
			return fmt.Errorf("failed to get link use case for link handler: %w", err)
		}
		c.linkHandler = linkHTTP.NewLinkHandler(useCase, c.Logger())
		return nil
	})
	if err != nil {
		return nil, err
	}
	return c.linkHandler, nil
}

// GroupHandler returns the HTTP handler for /users/:slug/groups.
func (c *Container) GroupHandler() (*linkHTTP.GroupHandler, error) {
	err := c.lazy(&c.groupHandlerInit, "groupHandler", func() error {
		useCase, err := c.GroupUseCase()
		if err != nil {
			return fmt.Errorf("failed to get group use case for group handler: %w", err)
		}
		c.groupHandler = linkHTTP.NewGroupHandler(useCase, c.Logger())
		return nil
	})
	if err != nil {
		return nil, err
	}
	return c.groupHandler, nil
}

// initLinkUseCase creates the link use case with all its dependencies.
func (c *Container) initLinkUseCase() (linkUseCase.LinkUseCase, error) {
	txManager, err := c.TxManager()
	if err != nil {
		return nil, fmt.Errorf("failed to get tx manager for link use case: %w", err)
	}

	profiles, err := c.UserRepository()
	if err != nil {
		return nil, fmt.Errorf("failed to get user repository for link use case: %w", err)
	}

	linkRepo, err := c.LinkRepository()
	if err != nil {
		return nil, fmt.Errorf("failed to get link repository for link use case: %w", err)
	}

	groupRepo, err := c.GroupRepository()
	if err != nil {
		return nil, fmt.Errorf("failed to get group repository for link use case: %w", err)
	}

	baseUseCase := linkUseCase.NewLinkUseCase(txManager, profiles, linkRepo, groupRepo)

	if c.config.MetricsEnabled {
		businessMetrics, err := c.BusinessMetrics()
		if err != nil {
			return nil, fmt.Errorf("failed to get business metrics for link use case: %w", err)
		}
		return linkUseCase.NewLinkUseCaseWithMetrics(baseUseCase, businessMetrics), nil
	}

	return baseUseCase, nil
}

// initGroupUseCase creates the collection use case with all its dependencies.
func (c *Container) initGroupUseCase() (linkUseCase.GroupUseCase, error) {
	profiles, err := c.UserRepository()
	if err != nil {
		return nil, fmt.Errorf("failed to get user repository for group use case: %w", err)
	}

	groupRepo, err := c.GroupRepository()
	if err != nil {
		return nil, fmt.Errorf("failed to get group repository for group use case: %w", err)
	}

	baseUseCase := linkUseCase.NewGroupUseCase(profiles, groupRepo)

	if c.config.MetricsEnabled {
		businessMetrics, err := c.BusinessMetrics()
		if err != nil {
			return nil, fmt.Errorf("failed to get business metrics for group use case: %w", err)
		}
		return linkUseCase.NewGroupUseCaseWithMetrics(baseUseCase, businessMetrics), nil
	}

	return baseUseCase, nil
}
