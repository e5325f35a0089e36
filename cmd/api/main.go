package main

import (
	"net/http"
	"os"
	"petshop/cmd/internal/domain/sqlite"
	"petshop/cmd/internal/domain/sqlite/repository"
	"petshop/cmd/internal/routes"
	"petshop/cmd/internal/service"
	"petshop/cmd/internal/utils/ratelimit"
	"petshop/cmd/internal/utils/validators"

	"github.com/go-playground/validator/v10"
	"github.com/joho/godotenv"
	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	"github.com/labstack/gommon/log"
)

func main() {
	validate := validator.New()
	registerValidators(validate)

	err := godotenv.Load()
	if err != nil {
		log.Warnf("no .env file loaded: %v", err)
	}

	secret := os.Getenv("JWT_SECRET")
	if secret == "" {
		log.Fatal("JWT_SECRET must be set")
	}

	dbPath := os.Getenv("DATABASE_PATH")
	if dbPath == "" {
		dbPath = "./database.db"
	}

	// Init SQLite
	db, err := sqlite.Init(dbPath)
	if err != nil {
		log.Fatal("failed to initialize database", err)
	}

	// Getting repositories
	funcionarioRepo := repository.NewFuncionarioRepository(db)
	tutorRepo := repository.NewTutorRepository(db)
	petRepo := repository.NewPetRepository(db)
	servicoRepo := repository.NewServicoRepository(db)
	atendimentoRepo := repository.NewAtendimentoRepository(db)

	// Getting services
	loginLimiter := ratelimit.NewKeyedLimiter(1, 5)
	funcionarioService := service.NewFuncionarioService(funcionarioRepo, validate, []byte(secret), loginLimiter)
	tutorService := service.NewTutorService(tutorRepo, validate)
	petService := service.NewPetService(petRepo, tutorRepo, validate)
	servicoService := service.NewServicoService(servicoRepo, validate)
	atendimentoService := service.NewAtendimentoService(atendimentoRepo, validate)

	// Getting routes
	funcionarioRoutes := routes.NewFuncionarioDefault(funcionarioService)
	tutorRoutes := routes.NewTutorDefault(tutorService)
	petRoutes := routes.NewPetDefault(petService)
	servicoRoutes := routes.NewServicoDefault(servicoService)
	atendimentoRoutes := routes.NewAtendimentoDefault(atendimentoService)

	e := echo.New()
	e.Use(middleware.CORS())

	e.GET("/health", func(c echo.Context) error {
		return c.JSON(http.StatusOK, echo.Map{"status": "Server is running"})
	})

	// Auth
	e.POST("/login", funcionarioRoutes.CreateLogin)

	auth := routes.BearerAuth([]byte(secret))
	admin := routes.RequireAutoridade(2)

	e.POST("/register", funcionarioRoutes.Register, auth, admin)
	e.GET("/profile", funcionarioRoutes.GetProfile, auth)
	e.PUT("/profile", funcionarioRoutes.UpdateProfile, auth)

	// Funcionarios (admin only)
	e.GET("/funcionarios", funcionarioRoutes.GetFuncionarios, auth, admin)
	e.GET("/funcionarios/email/:email", funcionarioRoutes.GetFuncionarioByEmail, auth, admin)
	e.PUT("/funcionarios/:id", funcionarioRoutes.UpdateFuncionario, auth, admin)
	e.DELETE("/funcionarios/:id", funcionarioRoutes.DeleteFuncionario, auth, admin)

	// Tutors
	e.GET("/tutors", tutorRoutes.GetTutores, auth)
	e.GET("/tutors/all", tutorRoutes.GetAllTutores, auth)
	e.GET("/tutors/:id", tutorRoutes.GetTutor, auth)
	e.GET("/tutors/cpf/:cpf", tutorRoutes.GetTutorByCPF, auth)
	e.POST("/tutors", tutorRoutes.CreateTutor, auth)
	e.PUT("/tutors/:id", tutorRoutes.UpdateTutor, auth)
	e.DELETE("/tutors/:id", tutorRoutes.DeleteTutor, auth)

	// Pets
	e.GET("/pets", petRoutes.GetPets, auth)
	e.GET("/pets/:id", petRoutes.GetPet, auth)
	e.GET("/pets/cpf/:cpf", petRoutes.GetPetsByTutorCPF, auth)
	e.POST("/pets", petRoutes.CreatePet, auth)
	e.PUT("/pets/:id", petRoutes.UpdatePet, auth)
	e.DELETE("/pets/:id", petRoutes.DeletePet, auth)

	// Services
	e.GET("/services", servicoRoutes.GetServicos, auth)
	e.GET("/services/nome/:nome", servicoRoutes.GetServicoByNome, auth)
	e.POST("/services", servicoRoutes.CreateServico, auth)
	e.PUT("/services/:id", servicoRoutes.UpdateServico, auth)
	e.DELETE("/services/:id", servicoRoutes.DeleteServico, auth)

	// Atendimentos
	e.GET("/atendimentos", atendimentoRoutes.GetAtendimentos, auth)
	e.GET("/atendimentos/tutor/:nome", atendimentoRoutes.GetAtendimentosByTutorNome, auth)
	e.GET("/atendimentos/:id", atendimentoRoutes.GetAtendimento, auth)
	e.POST("/atendimentos", atendimentoRoutes.CreateAtendimento, auth)
	e.PUT("/atendimentos/:id", atendimentoRoutes.UpdateAtendimento, auth)
	e.DELETE("/atendimentos/:id", atendimentoRoutes.DeleteAtendimento, auth)

	port := os.Getenv("PORT")
	if port == "" {
		port = "5000"
	}

	err = e.Start(":" + port)
	if err != nil {
		e.Logger.Fatal(err)
	}
}

func registerValidators(validate *validator.Validate) {
	_ = validate.RegisterValidation("cpf", validators.IsCPF)
	_ = validate.RegisterValidation("iso8601", validators.IsIso8601)
}
