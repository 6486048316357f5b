package factories

import "github.com/jaswdr/faker"

var fake = faker.New()
