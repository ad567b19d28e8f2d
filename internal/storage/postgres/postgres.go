package postgres

import (
	"database/sql"
	"errors"
	"fmt"

	"hotelbooker/internal/config"
	"hotelbooker/internal/models"
	"hotelbooker/internal/storage"

	"github.com/lib/pq"
)

const uniqueViolation = "23505"

type Storage struct {
	DB *sql.DB
}

func InitDB(dbCfg *config.Database) (*Storage, error) {
	connStr := fmt.Sprintf("host=%s port=%d user=%s password=%s dbname=%s sslmode=%s",
		dbCfg.Host,
		dbCfg.Port,
		dbCfg.User,
		dbCfg.Password,
		dbCfg.DBName,
		dbCfg.SSLMode,
	)

	db, err := sql.Open("postgres", connStr)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to the database: %w", err)
	}

	if err = db.Ping(); err != nil {
		return nil, fmt.Errorf("failed to connect to the database: %w", err)
	}

	return &Storage{DB: db}, nil
}

func (s *Storage) Close() error {
	return s.DB.Close()
}

// FindUserBooking returns the user's booking together with its room, or
// (nil, nil) when the user holds none.
func (s *Storage) FindUserBooking(userID int) (*models.Booking, error) {
	query := `
		SELECT b.id, b.user_id, b.room_id, b.created_at, b.updated_at,
		       r.id, r.name, r.capacity, r.hotel_id, r.created_at, r.updated_at
		FROM bookings b
		JOIN rooms r ON r.id = b.room_id
		WHERE b.user_id = $1`

	var booking models.Booking
	var room models.Room
	err := s.DB.QueryRow(query, userID).Scan(
		&booking.ID,
		&booking.UserID,
		&booking.RoomID,
		&booking.CreatedAt,
		&booking.UpdatedAt,
		&room.ID,
		&room.Name,
		&room.Capacity,
		&room.HotelID,
		&room.CreatedAt,
		&room.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get user booking: %w", err)
	}

	booking.Room = &room

	return &booking, nil
}

func (s *Storage) FindRoomByID(roomID int) (*models.Room, error) {
	query := `
		SELECT id, name, capacity, hotel_id, created_at, updated_at
		FROM rooms
		WHERE id = $1`

	var room models.Room
	err := s.DB.QueryRow(query, roomID).Scan(
		&room.ID,
		&room.Name,
		&room.Capacity,
		&room.HotelID,
		&room.CreatedAt,
		&room.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get room: %w", err)
	}

	return &room, nil
}

func (s *Storage) CountBookingsByRoomID(roomID int) (int, error) {
	query := `
		SELECT COUNT(*)
		FROM bookings
		WHERE room_id = $1`

	var count int
	if err := s.DB.QueryRow(query, roomID).Scan(&count); err != nil {
		return 0, fmt.Errorf("failed to count room bookings: %w", err)
	}

	return count, nil
}

func (s *Storage) FindEnrollmentByUserID(userID int) (*models.Enrollment, error) {
	query := `
		SELECT id, user_id, name, cpf, created_at, updated_at
		FROM enrollments
		WHERE user_id = $1`

	var enrollment models.Enrollment
	err := s.DB.QueryRow(query, userID).Scan(
		&enrollment.ID,
		&enrollment.UserID,
		&enrollment.Name,
		&enrollment.CPF,
		&enrollment.CreatedAt,
		&enrollment.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get enrollment: %w", err)
	}

	return &enrollment, nil
}

func (s *Storage) FindTicketByEnrollmentID(enrollmentID int) (*models.Ticket, error) {
	query := `
		SELECT t.id, t.enrollment_id, t.ticket_type_id, t.status, t.created_at, t.updated_at,
		       tt.id, tt.name, tt.price_cents, tt.is_remote, tt.includes_hotel
		FROM tickets t
		JOIN ticket_types tt ON tt.id = t.ticket_type_id
		WHERE t.enrollment_id = $1`

	var ticket models.Ticket
	err := s.DB.QueryRow(query, enrollmentID).Scan(
		&ticket.ID,
		&ticket.EnrollmentID,
		&ticket.TicketTypeID,
		&ticket.Status,
		&ticket.CreatedAt,
		&ticket.UpdatedAt,
		&ticket.TicketType.ID,
		&ticket.TicketType.Name,
		&ticket.TicketType.PriceCents,
		&ticket.TicketType.IsRemote,
		&ticket.TicketType.IncludesHotel,
	)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get ticket: %w", err)
	}

	return &ticket, nil
}

// CreateBooking inserts a booking after re-checking the room's occupancy
// inside a transaction. The room row is locked first so concurrent writers
// for the same room serialize on the re-count; a second booking for the
// same user is rejected by the unique index on bookings.user_id.
func (s *Storage) CreateBooking(userID, roomID int) (*models.Booking, error) {
	tx, err := s.DB.Begin()
	if err != nil {
		return nil, fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback()

	if err = checkRoomCapacity(tx, roomID); err != nil {
		return nil, err
	}

	insertQuery := `
		INSERT INTO bookings (user_id, room_id, created_at, updated_at)
		VALUES ($1, $2, NOW(), NOW())
		RETURNING id, user_id, room_id, created_at, updated_at`

	var booking models.Booking
	err = tx.QueryRow(insertQuery, userID, roomID).Scan(
		&booking.ID,
		&booking.UserID,
		&booking.RoomID,
		&booking.CreatedAt,
		&booking.UpdatedAt,
	)
	if err != nil {
		var pqErr *pq.Error
		if errors.As(err, &pqErr) && pqErr.Code == uniqueViolation {
			return nil, storage.ErrAlreadyBooked
		}
		return nil, fmt.Errorf("failed to create booking: %w", err)
	}

	if err = tx.Commit(); err != nil {
		return nil, fmt.Errorf("failed to commit transaction: %w", err)
	}

	return &booking, nil
}

// ReplaceBooking points an existing booking at a new room. The new room's
// occupancy is re-checked under the same lock as CreateBooking.
func (s *Storage) ReplaceBooking(bookingID, roomID int) (*models.Booking, error) {
	tx, err := s.DB.Begin()
	if err != nil {
		return nil, fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback()

	if err = checkRoomCapacity(tx, roomID); err != nil {
		return nil, err
	}

	updateQuery := `
		UPDATE bookings
		SET room_id = $2, updated_at = NOW()
		WHERE id = $1
		RETURNING id, user_id, room_id, created_at, updated_at`

	var booking models.Booking
	err = tx.QueryRow(updateQuery, bookingID, roomID).Scan(
		&booking.ID,
		&booking.UserID,
		&booking.RoomID,
		&booking.CreatedAt,
		&booking.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, storage.ErrBookingNotFound
		}
		return nil, fmt.Errorf("failed to replace booking: %w", err)
	}

	if err = tx.Commit(); err != nil {
		return nil, fmt.Errorf("failed to commit transaction: %w", err)
	}

	return &booking, nil
}

func checkRoomCapacity(tx *sql.Tx, roomID int) error {
	var capacity int
	lockQuery := `
		SELECT capacity
		FROM rooms
		WHERE id = $1
		FOR UPDATE`

	if err := tx.QueryRow(lockQuery, roomID).Scan(&capacity); err != nil {
		return fmt.Errorf("failed to lock room: %w", err)
	}

	var count int
	countQuery := `
		SELECT COUNT(*)
		FROM bookings
		WHERE room_id = $1`

	if err := tx.QueryRow(countQuery, roomID).Scan(&count); err != nil {
		return fmt.Errorf("failed to count room bookings: %w", err)
	}

	if count >= capacity {
		return storage.ErrRoomFull
	}

	return nil
}

func (s *Storage) FindHotels() ([]models.Hotel, error) {
	query := `
		SELECT id, name, image, created_at, updated_at
		FROM hotels
		ORDER BY id ASC`

	rows, err := s.DB.Query(query)
	if err != nil {
		return nil, fmt.Errorf("failed to get hotels: %w", err)
	}
	defer rows.Close()

	var hotels []models.Hotel
	for rows.Next() {
		var hotel models.Hotel
		err = rows.Scan(
			&hotel.ID,
			&hotel.Name,
			&hotel.Image,
			&hotel.CreatedAt,
			&hotel.UpdatedAt,
		)
		if err != nil {
			return nil, fmt.Errorf("failed to scan hotel: %w", err)
		}
		hotels = append(hotels, hotel)
	}

	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating hotels: %w", err)
	}

	return hotels, nil
}

func (s *Storage) FindHotelByID(hotelID int) (*models.HotelWithRooms, error) {
	query := `
		SELECT id, name, image, created_at, updated_at
		FROM hotels
		WHERE id = $1`

	var hotel models.HotelWithRooms
	err := s.DB.QueryRow(query, hotelID).Scan(
		&hotel.ID,
		&hotel.Name,
		&hotel.Image,
		&hotel.CreatedAt,
		&hotel.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get hotel: %w", err)
	}

	roomsQuery := `
		SELECT id, name, capacity, hotel_id, created_at, updated_at
		FROM rooms
		WHERE hotel_id = $1
		ORDER BY id ASC`

	rows, err := s.DB.Query(roomsQuery, hotelID)
	if err != nil {
		return nil, fmt.Errorf("failed to get hotel rooms: %w", err)
	}
	defer rows.Close()

	for rows.Next() {
		var room models.Room
		err = rows.Scan(
			&room.ID,
			&room.Name,
			&room.Capacity,
			&room.HotelID,
			&room.CreatedAt,
			&room.UpdatedAt,
		)
		if err != nil {
			return nil, fmt.Errorf("failed to scan room: %w", err)
		}
		hotel.Rooms = append(hotel.Rooms, room)
	}

	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating rooms: %w", err)
	}

	return &hotel, nil
}
